package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vadibank/vadi/api"
)

func serverCommands(app *vadiInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the vadi HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			router := api.NewAPI(app.vadi).Router()
			logrus.Infof("%s listening on port %s", app.cnf.ProjectName, app.cnf.Server.Port)
			if err := router.Run(":" + app.cnf.Server.Port); err != nil {
				logrus.Fatal(err)
			}
		},
	}
}
