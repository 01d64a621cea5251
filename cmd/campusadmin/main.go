package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/campusadmin/internal/pkg/logger"
	"github.com/yigit/campusadmin/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "campusadmin",
		Usage: "college management admin console",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the admin console HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "configs/config.yaml",
						Usage:   "path to the YAML configuration file",
						EnvVars: []string{"CAMPUSADMIN_CONFIG"},
					},
				},
				Action: serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("campusadmin failed")
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.String("config"))
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}
