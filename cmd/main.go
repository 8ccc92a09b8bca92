package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vadibank/vadi"
	"github.com/vadibank/vadi/config"
	"github.com/vadibank/vadi/store"
)

// vadiInstance holds the engine and its configuration for the CLI commands.
type vadiInstance struct {
	vadi *vadi.Vadi
	cnf  *config.Configuration
}

func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

func preRun(app *vadiInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig("vadi.json"); err != nil {
			logrus.Fatal("error loading config: ", err)
		}
		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		kv, err := store.NewFromConfig(cnf)
		if err != nil {
			logrus.Fatal("error opening storage backend: ", err)
		}

		engine := vadi.NewVadi(kv)
		if err := engine.Hydrate(context.Background()); err != nil {
			logrus.Fatal("error hydrating state: ", err)
		}

		app.vadi = engine
		app.cnf = cnf
		return nil
	}
}

func rootCommands() *cobra.Command {
	app := &vadiInstance{}
	cmd := &cobra.Command{
		Use:               "vadi",
		Short:             "retail banking simulation engine",
		PersistentPreRunE: preRun(app),
	}
	cmd.AddCommand(serverCommands(app))
	cmd.AddCommand(resetCommands(app))
	return cmd
}

func main() {
	defer recoverPanic()
	if err := rootCommands().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
