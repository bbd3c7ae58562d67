package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/transformime/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Preview a notebook or bundle file in the browser",
		Description: `Serves the rendered outputs of a file on localhost. The file is re-read
on every request, so reloading the page picks up changes.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to a .ipynb or bundle .json file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
			&cli.BoolFlag{
				Name:  "no-redact",
				Usage: "Disable redaction of secrets and PII",
			},
			&cli.StringSliceFlag{
				Name:  "redact",
				Usage: "Rules to redact. Example: --redact=secrets,pii",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tm, err := newTransformime(cfg)
			if err != nil {
				return err
			}

			redactor, err := newRedactor(cmd.Bool("no-redact"), cmd.StringSlice("redact"), cfg)
			if err != nil {
				return err
			}

			path := cmd.String("file")
			srv := &server.Server{
				Title: filepath.Base(path),
				Port:  int(cmd.Int("port")),
				Source: func(ctx context.Context) ([]server.Section, error) {
					results, err := renderFile(ctx, tm, redactor, path)
					if err != nil {
						return nil, err
					}
					return sections(results), nil
				},
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}
}
