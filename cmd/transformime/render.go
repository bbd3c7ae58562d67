package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/transformime"
	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/dom"
	"github.com/sonnes/transformime/notebook"
	"github.com/sonnes/transformime/redact"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render every output in a notebook or bundle file",
		Description: `Reads a Jupyter notebook (.ipynb) or a JSON file holding one MIME bundle
or an array of bundles, and renders each output in the richest format a
registered renderer supports.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to a .ipynb or bundle .json file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, html, json, page",
				Value: "terminal",
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

			write, err := format(cmd.String("o"))
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
			results, err := renderFile(ctx, tm, redactor, path)
			if err != nil {
				return err
			}
			return write(os.Stdout, filepath.Base(path), results)
		},
	}
}

func renderFile(ctx context.Context, tm *transformime.Transformime, redactor *redact.Redactor, path string) ([]result, error) {
	outputs, err := notebook.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return renderOutputs(ctx, tm, redactor, outputs)
}

// renderOutputs dispatches every output at once and collects the results
// in input order.
func renderOutputs(ctx context.Context, tm *transformime.Transformime, redactor *redact.Redactor, outputs []notebook.Output) ([]result, error) {
	doc := dom.NewDocument()
	pending := make([]*core.Outcome, len(outputs))
	for i, o := range outputs {
		b := o.Bundle
		if redactor != nil {
			b = redactor.Bundle(b)
		}
		pending[i] = tm.TransformRichest(ctx, b, doc)
	}

	results := make([]result, len(outputs))
	for i, o := range pending {
		el, err := o.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", outputLabel(outputs[i]), err)
		}
		if el == nil {
			return nil, fmt.Errorf("render %s: renderer returned no element", outputLabel(outputs[i]))
		}
		log.Debug("rendered", "output", outputLabel(outputs[i]), "mimetype", el.GetAttribute("data-mimetype"))
		results[i] = result{Output: outputs[i], Element: el}
	}
	return results, nil
}

func renderersCmd() *cli.Command {
	return &cli.Command{
		Name:  "renderers",
		Usage: "List the active renderers, least rich first",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tm, err := newTransformime(cfg)
			if err != nil {
				return err
			}
			return listRenderers(os.Stdout, tm)
		},
	}
}

func listRenderers(w io.Writer, tm *transformime.Transformime) error {
	for i, r := range tm.Renderers() {
		if _, err := fmt.Fprintf(w, "%2d  %s\n", i+1, r.MimeType()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "fallback  %s\n", tm.Fallback().MimeType())
	return err
}
