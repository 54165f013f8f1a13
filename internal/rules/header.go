package rules

import (
	"fmt"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

func header(c commit.Commit) string { return c.Header }

func init() {
	Register(Rule{
		Name:  "header-case",
		Value: CaseValue,
		Check: caseRule("header", single(header), letterFirst),
	})
	Register(Rule{
		Name:  "header-full-stop",
		Value: StringValue,
		Check: fullStopRule("header", header),
	})
	Register(Rule{
		Name:  "header-max-length",
		Value: IntValue,
		Check: checkHeaderMaxLength,
	})
	Register(Rule{
		Name:  "header-min-length",
		Value: IntValue,
		Check: checkHeaderMinLength,
	})
	Register(Rule{
		Name:  "header-trim",
		Value: NoValue,
		Check: checkHeaderTrim,
	})
}

func checkHeaderMaxLength(c commit.Commit, _ config.Applicability, value any) (bool, string) {
	limit, _ := value.(int)
	n := length(c.Header)
	return n <= limit, fmt.Sprintf("header must not be longer than %d characters, current length is %d", limit, n)
}

func checkHeaderMinLength(c commit.Commit, _ config.Applicability, value any) (bool, string) {
	limit, _ := value.(int)
	n := length(c.Header)
	return n >= limit, fmt.Sprintf("header must not be shorter than %d characters, current length is %d", limit, n)
}

func checkHeaderTrim(c commit.Commit, _ config.Applicability, _ any) (bool, string) {
	leading := strings.TrimLeft(c.Header, " \t") != c.Header
	trailing := strings.TrimRight(c.Header, " \t") != c.Header

	switch {
	case leading && trailing:
		return false, "header must not be surrounded by whitespace"
	case leading:
		return false, "header must not start with whitespace"
	case trailing:
		return false, "header must not end with whitespace"
	default:
		return true, ""
	}
}
