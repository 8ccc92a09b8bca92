package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func resetCommands(app *vadiInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "reset the demo ledger to its pristine state",
		Run: func(cmd *cobra.Command, args []string) {
			app.vadi.ResetDemo()
			logrus.Info("demo state reset, backing key removal scheduled")
		},
	}
}
