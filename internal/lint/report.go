package lint

import (
	"context"
)

// Report aggregates the outcomes of several messages.
type Report struct {
	Valid        bool      `json:"valid"`
	ErrorCount   int       `json:"errorCount"`
	WarningCount int       `json:"warningCount"`
	Results      []Outcome `json:"results"`
}

// Failed reports whether the run should exit non-zero. With strict set,
// warnings count as failures too.
func (r Report) Failed(strict bool) bool {
	if !r.Valid {
		return true
	}
	return strict && r.WarningCount > 0
}

// LintAll lints every message. An empty message aborts the run.
func (l *Linter) LintAll(ctx context.Context, messages []string) (Report, error) {
	report := Report{Valid: true, Results: make([]Outcome, 0, len(messages))}
	for _, msg := range messages {
		out, err := l.Lint(ctx, msg)
		if err != nil {
			return Report{}, err
		}
		report.add(out)
	}
	return report, nil
}

func (r *Report) add(out Outcome) {
	r.Results = append(r.Results, out)
	r.ErrorCount += len(out.Errors)
	r.WarningCount += len(out.Warnings)
	if !out.Valid {
		r.Valid = false
	}
}
