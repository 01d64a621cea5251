package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/yigit/campusadmin/internal/devapi"
	"github.com/yigit/campusadmin/internal/pkg/auth"
	"github.com/yigit/campusadmin/internal/pkg/logger"
	"github.com/yigit/campusadmin/internal/seed"
	"github.com/yigit/campusadmin/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "devapi",
		Usage: "in-memory college REST backend for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":9090", Usage: "listen address", EnvVars: []string{"DEVAPI_ADDR"}},
			&cli.StringFlag{Name: "secret", Value: "devapi-secret", Usage: "token signing secret", EnvVars: []string{"DEVAPI_SECRET"}},
			&cli.DurationFlag{Name: "token-ttl", Value: 12 * time.Hour, Usage: "bearer token lifetime"},
			&cli.StringFlag{Name: "admin-user", Value: "admin", Usage: "username of the seeded admin"},
			&cli.StringFlag{Name: "admin-password", Value: "admin123", Usage: "password of the seeded admin", EnvVars: []string{"DEVAPI_ADMIN_PASSWORD"}},
			&cli.BoolFlag{Name: "sample-data", Value: true, Usage: "load sample students and courses"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("devapi failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	lgr := logger.Configure(logger.ParseConfig(c.String("log-level"), "text"))
	gin.SetMode(gin.ReleaseMode)

	store := devapi.NewStore()
	if err := seed.CreateDefaultData(store, seed.Options{
		AdminUsername: c.String("admin-user"),
		AdminPassword: c.String("admin-password"),
		SampleRecords: c.Bool("sample-data"),
	}, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   c.String("secret"),
		TokenExp:    c.Duration("token-ttl"),
		TokenIssuer: "devapi",
	})
	handler := devapi.NewHandler(store, jwtService, lgr)

	return server.New(c.String("addr"), handler.Router(), lgr).Run()
}
