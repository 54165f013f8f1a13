package commit

import (
	"regexp"
	"strings"
)

var (
	trailerPattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*|BREAKING CHANGE)(?:: | #)(.*)$`)

	// Git treats a paragraph as a trailer block when it carries one of these
	// even if not every line is a trailer.
	gitGeneratedPrefixes = []string{"Signed-off-by: ", "(cherry picked from commit "}
)

// trailerBlockStart returns the index of the first line of the last
// paragraph when git would parse that paragraph as trailers, or -1. The
// header paragraph never holds trailers.
func trailerBlockStart(lines []string) int {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	start := end
	for start > 0 && strings.TrimSpace(lines[start-1]) != "" {
		start--
	}
	if start == 0 || start >= end {
		return -1
	}

	var trailers, others int
	generated := false
	for i, line := range lines[start:end] {
		if i > 0 && startsWithSpace(line) {
			continue
		}
		if trailerPattern.MatchString(line) {
			trailers++
			for _, prefix := range gitGeneratedPrefixes {
				if strings.HasPrefix(line, prefix) {
					generated = true
				}
			}
			continue
		}
		if strings.HasPrefix(line, gitGeneratedPrefixes[1]) {
			generated = true
			trailers++
			continue
		}
		others++
	}

	if trailers == 0 {
		return -1
	}
	if others == 0 || (generated && trailers*3 >= others) {
		return start
	}
	return -1
}

// parseTrailers collects Key: value pairs, joining continuation lines.
func parseTrailers(lines []string) []Trailer {
	var out []Trailer
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if startsWithSpace(line) && len(out) > 0 {
			out[len(out)-1].Value += " " + strings.TrimSpace(line)
			continue
		}
		m := trailerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, Trailer{Key: m[1], Value: strings.TrimSpace(m[2])})
	}
	return out
}

func startsWithSpace(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}
