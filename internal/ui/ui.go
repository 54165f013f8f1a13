package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	apperrors "github.com/youniqx/heist-commitlint/internal/errors"
	"github.com/youniqx/heist-commitlint/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// Symbols used by the lint report, same glyphs as commitlint.
const (
	InputSymbol   = "⧗"
	ErrorSymbol   = "✖"
	WarningSymbol = "⚠"
	SuccessSymbol = "✔"
	HelpSymbol    = "ⓘ"
)

// SetColor switches colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

var activeSpinner *SmartSpinner

// SmartSpinner wraps a terminal spinner that writes to stderr so that
// stdout stays parseable.
type SmartSpinner struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	return NewSpinner().WithMessage(initialMessage).Build()
}

// Start starts the spinner and registers it as the globally active spinner.
func (s *SmartSpinner) Start() {
	activeSpinner = s
	s.spinner.Start()
}

// Stop stops the spinner and clears the active spinner record.
func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
	if activeSpinner == s {
		activeSpinner = nil
	}
}

// StopActiveSpinner stops the currently active spinner in the terminal session.
func StopActiveSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(s.out, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(s.out, msg)
}

// SpinnerBuilder allows building spinners with flexible configuration
type SpinnerBuilder struct {
	message string
	charset int
	color   string
	speed   time.Duration
	out     io.Writer
}

// NewSpinner creates a new spinner builder
func NewSpinner() *SpinnerBuilder {
	return &SpinnerBuilder{
		charset: 14,
		color:   "cyan",
		speed:   100 * time.Millisecond,
		out:     os.Stderr,
	}
}

// WithMessage sets the spinner message
func (b *SpinnerBuilder) WithMessage(msg string) *SpinnerBuilder {
	b.message = msg
	return b
}

// WithColor sets the spinner color
func (b *SpinnerBuilder) WithColor(color string) *SpinnerBuilder {
	b.color = color
	return b
}

// WithWriter sets where the spinner and its final line are written
func (b *SpinnerBuilder) WithWriter(w io.Writer) *SpinnerBuilder {
	b.out = w
	return b
}

// Build constructs the SmartSpinner with the specified configuration
func (b *SpinnerBuilder) Build() *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[b.charset],
		b.speed,
		spinner.WithColor(b.color),
		spinner.WithSuffix(" "+b.message),
		spinner.WithWriter(b.out),
	)
	return &SmartSpinner{spinner: s, out: b.out}
}

// WithSpinner runs fn while a spinner shows message on stderr.
func WithSpinner(message, done string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	if err := fn(); err != nil {
		s.Stop()
		return err
	}

	s.Success(done)
	return nil
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Success.Sprint(SuccessSymbol), Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint(ErrorSymbol), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Warning.Sprint(WarningSymbol), Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Info.Sprint(HelpSymbol), Info.Sprint(msg))
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// HandleAppError prints err in a friendly way. If t is nil, English
// defaults are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = Error.Fprintf(w, "%s %s: %s\n", ErrorSymbol, appErr.Type, appErr.Message)
	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}
	for _, key := range []string{"rule", "path", "preset", "case", "format", "range", "pr_number", "language", "key", "stderr"} {
		if v, ok := appErr.Context[key]; ok {
			PrintKeyValue(w, key, fmt.Sprint(v))
		}
	}

	if appErr.Suggestion != "" {
		tryPrefix := "Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = Info.Fprintf(w, "%s %s", HelpSymbol, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "     %s\n", line)
			}
		}
	}
}
