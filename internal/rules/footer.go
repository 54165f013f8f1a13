package rules

import (
	"fmt"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

func footer(c commit.Commit) string { return c.Footer }

func init() {
	Register(Rule{Name: "footer-empty", Value: NoValue, Check: emptyRule("footer", footer)})
	Register(Rule{Name: "footer-leading-blank", Value: NoValue, Check: checkFooterLeadingBlank})
	Register(Rule{Name: "footer-max-length", Value: IntValue, Check: maxLengthRule("footer", footer)})
	Register(Rule{Name: "footer-max-line-length", Value: IntValue, Check: checkFooterMaxLineLength})
	Register(Rule{Name: "footer-min-length", Value: IntValue, Check: minLengthRule("footer", footer)})
}

func checkFooterLeadingBlank(c commit.Commit, when config.Applicability, _ any) (bool, string) {
	start := c.FooterLine()
	if start < 1 {
		return true, ""
	}
	blank := strings.TrimSpace(c.Lines()[start-1]) == ""
	if negated(when) {
		return !blank, "footer must not have leading blank line"
	}
	return blank, "footer must have leading blank line"
}

func checkFooterMaxLineLength(c commit.Commit, _ config.Applicability, value any) (bool, string) {
	limit, _ := value.(int)
	msg := fmt.Sprintf("footer's lines must not be longer than %d characters", limit)
	if c.Footer == "" {
		return true, msg
	}
	return maxLineLength(c.Footer, limit), msg
}
