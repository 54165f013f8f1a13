package rules

import (
	"fmt"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

func body(c commit.Commit) string { return c.Body }

func init() {
	Register(Rule{Name: "body-empty", Value: NoValue, Check: emptyRule("body", body)})
	Register(Rule{Name: "body-leading-blank", Value: NoValue, Check: checkBodyLeadingBlank})
	Register(Rule{Name: "body-max-length", Value: IntValue, Check: maxLengthRule("body", body)})
	Register(Rule{Name: "body-max-line-length", Value: IntValue, Check: checkBodyMaxLineLength})
	Register(Rule{Name: "body-min-length", Value: IntValue, Check: minLengthRule("body", body)})
}

func checkBodyLeadingBlank(c commit.Commit, when config.Applicability, _ any) (bool, string) {
	if c.Body == "" {
		return true, ""
	}
	lines := c.Lines()
	blank := len(lines) > 1 && strings.TrimSpace(lines[1]) == ""
	if negated(when) {
		return !blank, "body must not have leading blank line"
	}
	return blank, "body must have leading blank line"
}

func checkBodyMaxLineLength(c commit.Commit, _ config.Applicability, value any) (bool, string) {
	limit, _ := value.(int)
	msg := fmt.Sprintf("body's lines must not be longer than %d characters", limit)
	if c.Body == "" {
		return true, msg
	}
	return maxLineLength(c.Body, limit), msg
}
