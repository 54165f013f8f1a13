package rules

import "github.com/youniqx/heist-commitlint/internal/commit"

func commitType(c commit.Commit) string { return c.Type }

func init() {
	Register(Rule{Name: "type-case", Value: CaseValue, Check: caseRule("type", single(commitType), nil)})
	Register(Rule{Name: "type-empty", Value: NoValue, Check: emptyRule("type", commitType)})
	Register(Rule{Name: "type-enum", Value: StringsValue, Check: enumRule("type", single(commitType))})
	Register(Rule{Name: "type-max-length", Value: IntValue, Check: maxLengthRule("type", commitType)})
	Register(Rule{Name: "type-min-length", Value: IntValue, Check: minLengthRule("type", commitType)})
}
