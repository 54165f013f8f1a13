package rules

import (
	"fmt"
	"strings"

	"github.com/youniqx/heist-commitlint/internal/commit"
	"github.com/youniqx/heist-commitlint/internal/config"
)

func init() {
	Register(Rule{Name: "signed-off-by", Value: StringValue, Check: checkSignedOffBy})
	Register(Rule{Name: "trailer-exists", Value: StringValue, Check: checkTrailerExists})
}

// checkSignedOffBy looks at the last non-empty line of the message, comments
// and scissors section excluded. A sign-off followed by another trailer such
// as Co-authored-by fails here; trailer-exists accepts it anywhere in the
// trailer block.
func checkSignedOffBy(c commit.Commit, when config.Applicability, value any) (bool, string) {
	prefix, _ := value.(string)

	var last string
	lines := c.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			last = lines[i]
			break
		}
	}

	signed := last != "" && strings.HasPrefix(last, prefix)
	if negated(when) {
		return !signed, "message must not be signed off"
	}
	return signed, "message must be signed off"
}

func checkTrailerExists(c commit.Commit, when config.Applicability, value any) (bool, string) {
	prefix, _ := value.(string)

	found := false
	for _, t := range c.Trailers {
		if strings.HasPrefix(t.String(), prefix) {
			found = true
			break
		}
	}

	if negated(when) {
		return !found, fmt.Sprintf("message must not have `%s` trailer", prefix)
	}
	return found, fmt.Sprintf("message must have `%s` trailer", prefix)
}
