// Package format renders lint reports for terminals and CI.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/lint"
	"github.com/youniqx/heist-commitlint/internal/ui"
)

const (
	Text = "text"
	JSON = "json"
)

// Formatter writes a report to w.
type Formatter interface {
	Format(w io.Writer, report lint.Report) error
}

// New returns the formatter registered under name.
func New(name string, t *i18n.Translations, helpURL string, verbose bool) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", Text:
		return &TextFormatter{trans: t, helpURL: helpURL, verbose: verbose}, nil
	case JSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.ErrOutputFormat.
			WithContext("format", name).
			WithSuggestion("Use --format text or --format json")
	}
}

// TextFormatter prints the commitlint console layout:
//
//	⧗   input: foo: bar
//	✖   type must be one of [...] [type-enum]
//
//	✖   found 1 problems, 0 warnings
//	ⓘ   Get help: https://...
type TextFormatter struct {
	trans   *i18n.Translations
	helpURL string
	verbose bool
}

func (f *TextFormatter) Format(w io.Writer, report lint.Report) error {
	var b strings.Builder
	for _, out := range report.Results {
		f.outcome(&b, out)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) outcome(b *strings.Builder, out lint.Outcome) {
	problems := len(out.Errors) + len(out.Warnings)
	if problems == 0 && !f.verbose {
		return
	}

	fmt.Fprintf(b, "%s   %s %s", ui.Dim.Sprint(ui.InputSymbol), f.msg("format.input", nil), ui.Dim.Sprint(out.Input))
	if out.Ignored {
		fmt.Fprintf(b, " (%s)", f.msg("format.ignored", nil))
	}
	b.WriteString("\n")

	for _, p := range out.Errors {
		fmt.Fprintf(b, "%s   %s %s\n", ui.Error.Sprint(ui.ErrorSymbol), p.Message, ui.Dim.Sprintf("[%s]", p.Name))
	}
	for _, p := range out.Warnings {
		fmt.Fprintf(b, "%s   %s %s\n", ui.Warning.Sprint(ui.WarningSymbol), p.Message, ui.Dim.Sprintf("[%s]", p.Name))
	}
	b.WriteString("\n")

	summary := f.msg("format.found", map[string]interface{}{
		"Errors":   len(out.Errors),
		"Warnings": len(out.Warnings),
	})
	switch {
	case len(out.Errors) > 0:
		fmt.Fprintf(b, "%s   %s\n", ui.Error.Sprint(ui.ErrorSymbol), summary)
	case len(out.Warnings) > 0:
		fmt.Fprintf(b, "%s   %s\n", ui.Warning.Sprint(ui.WarningSymbol), summary)
	default:
		fmt.Fprintf(b, "%s   %s\n", ui.Success.Sprint(ui.SuccessSymbol), summary)
	}

	if problems > 0 && f.helpURL != "" {
		fmt.Fprintf(b, "%s   %s %s\n", ui.Info.Sprint(ui.HelpSymbol), f.msg("format.help", nil), f.helpURL)
	}
	b.WriteString("\n")
}

func (f *TextFormatter) msg(id string, data map[string]interface{}) string {
	if f.trans == nil {
		return fallback[id](data)
	}
	return f.trans.GetMessage(id, 0, data)
}

var fallback = map[string]func(map[string]interface{}) string{
	"format.input":   func(map[string]interface{}) string { return "input:" },
	"format.ignored": func(map[string]interface{}) string { return "ignored" },
	"format.help":    func(map[string]interface{}) string { return "Get help:" },
	"format.found": func(d map[string]interface{}) string {
		return fmt.Sprintf("found %v problems, %v warnings", d["Errors"], d["Warnings"])
	},
}

// JSONFormatter writes the report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, report lint.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
