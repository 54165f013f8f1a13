package rules

import "github.com/youniqx/heist-commitlint/internal/commit"

func subject(c commit.Commit) string { return c.Subject }

func init() {
	Register(Rule{Name: "subject-case", Value: CaseValue, Check: caseRule("subject", single(subject), letterFirst)})
	Register(Rule{Name: "subject-empty", Value: NoValue, Check: emptyRule("subject", subject)})
	Register(Rule{Name: "subject-full-stop", Value: StringValue, Check: fullStopRule("subject", subject)})
	Register(Rule{Name: "subject-max-length", Value: IntValue, Check: maxLengthRule("subject", subject)})
	Register(Rule{Name: "subject-min-length", Value: IntValue, Check: minLengthRule("subject", subject)})
}
