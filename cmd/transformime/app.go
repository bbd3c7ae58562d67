package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/transformime"
	"github.com/sonnes/transformime/config"
	"github.com/sonnes/transformime/dom"
	"github.com/sonnes/transformime/notebook"
	"github.com/sonnes/transformime/redact"
	"github.com/sonnes/transformime/server"
	"github.com/sonnes/transformime/terminal"
)

// result pairs an input output with the element rendered for it.
type result struct {
	Output  notebook.Output
	Element *dom.Element
}

// writeFunc writes rendered results in one output format. title names the
// input file.
type writeFunc func(w io.Writer, title string, results []result) error

// formats maps -o values to writers.
var formats = map[string]writeFunc{
	"terminal": writeTerminal,
	"html":     writeHTML,
	"json":     writeJSON,
	"page":     writePage,
}

func format(name string) (writeFunc, error) {
	fn, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn, nil
}

// loadConfig reads --config when set, otherwise returns defaults. --log
// overrides the configured level.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if lvl := cmd.String("log"); lvl != "" {
		cfg.Log = lvl
	}
	return cfg, nil
}

func newTransformime(cfg *config.Config) (*transformime.Transformime, error) {
	rs, err := cfg.BuildRenderers()
	if err != nil {
		return nil, err
	}
	return transformime.New(transformime.Config{
		Renderers: rs,
		Logger:    log.Default(),
	}), nil
}

// newRedactor builds a Redactor from the --redact rules, falling back to
// the config's rule sets. Returns nil when redaction is off.
func newRedactor(noRedact bool, rules []string, cfg *config.Config) (*redact.Redactor, error) {
	if noRedact {
		return nil, nil
	}

	rc := redact.Config{
		Secrets: cfg.RedactEnabled("secrets"),
		PII:     cfg.RedactEnabled("pii"),
	}
	if len(rules) > 0 {
		rc = redact.Config{}
		for _, r := range rules {
			switch r {
			case "secrets":
				rc.Secrets = true
			case "pii":
				rc.PII = true
			default:
				return nil, fmt.Errorf("unknown redaction rule %q", r)
			}
		}
	}
	if !rc.Secrets && !rc.PII {
		return nil, nil
	}
	return redact.New(rc)
}

func outputLabel(o notebook.Output) string {
	if o.Cell < 0 {
		return o.Type
	}
	return fmt.Sprintf("cell %d · %s", o.Cell, o.Type)
}

func writeTerminal(w io.Writer, _ string, results []result) error {
	r := terminal.New()
	for _, res := range results {
		if err := r.Render(w, outputLabel(res.Output), res.Element); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeHTML(w io.Writer, _ string, results []result) error {
	for _, res := range results {
		label := strings.ReplaceAll(outputLabel(res.Output), "--", "-")
		if _, err := fmt.Fprintf(w, "<!-- %s -->\n%s\n", label, res.Element.HTML()); err != nil {
			return err
		}
	}
	return nil
}

type jsonResult struct {
	Cell     *int         `json:"cell,omitempty"`
	Type     string       `json:"type"`
	MimeType string       `json:"mimetype,omitempty"`
	Element  *dom.Element `json:"element"`
}

func writeJSON(w io.Writer, _ string, results []result) error {
	out := make([]jsonResult, len(results))
	for i, res := range results {
		jr := jsonResult{
			Type:     res.Output.Type,
			MimeType: res.Element.GetAttribute("data-mimetype"),
			Element:  res.Element,
		}
		if res.Output.Cell >= 0 {
			cell := res.Output.Cell
			jr.Cell = &cell
		}
		out[i] = jr
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writePage(w io.Writer, title string, results []result) error {
	return server.WritePage(w, title, sections(results))
}

func sections(results []result) []server.Section {
	out := make([]server.Section, len(results))
	for i, res := range results {
		out[i] = server.Section{
			Label:    outputLabel(res.Output),
			MimeType: res.Element.GetAttribute("data-mimetype"),
			Element:  res.Element,
		}
	}
	return out
}
