// Package commit parses commit messages into conventional-commit parts.
package commit

import (
	"regexp"
	"strings"
)

// Trailer is a "Key: value" line from the trailer block of a message.
type Trailer struct {
	Key   string
	Value string
}

func (t Trailer) String() string {
	return t.Key + ": " + t.Value
}

// Commit is a parsed commit message.
type Commit struct {
	// Raw is the input as given, comments included.
	Raw string
	// Message is Raw without comment lines and scissors section.
	Message  string
	Header   string
	Type     string
	Scope    string
	Subject  string
	Breaking bool
	Body     string
	Footer   string
	Trailers []Trailer

	lines       []string
	bodyStart   int
	footerStart int
}

// Lines returns the message split into lines.
func (c Commit) Lines() []string {
	return c.lines
}

// BodyLine is the index in Lines of the first body line, or -1.
func (c Commit) BodyLine() int {
	return c.bodyStart
}

// FooterLine is the index in Lines of the first footer line, or -1.
func (c Commit) FooterLine() int {
	return c.footerStart
}

const (
	commentChar = "#"
	scissors    = "# ------------------------ >8 ------------------------"
)

var (
	headerPattern   = regexp.MustCompile(`^(\w*)(?:\(([^()\r\n]*)\))?(!)?: (.*)$`)
	breakingPattern = regexp.MustCompile(`^BREAKING[ -]CHANGE: `)
)

// Strip removes comment lines and everything below the scissors line, the
// way git does for the "scissors" and "strip" cleanup modes.
func Strip(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if line == scissors {
			break
		}
		if strings.HasPrefix(line, commentChar) {
			continue
		}
		kept = append(kept, line)
	}

	for len(kept) > 0 && strings.TrimSpace(kept[0]) == "" {
		kept = kept[1:]
	}
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}
	return strings.Join(kept, "\n")
}

// Parse splits a message into header, body, footer and trailers.
func Parse(raw string) Commit {
	c := Commit{
		Raw:         raw,
		Message:     Strip(raw),
		bodyStart:   -1,
		footerStart: -1,
	}
	if c.Message == "" {
		return c
	}

	c.lines = strings.Split(c.Message, "\n")
	c.Header = c.lines[0]

	if m := headerPattern.FindStringSubmatch(c.Header); m != nil {
		c.Type = m[1]
		c.Scope = m[2]
		c.Breaking = m[3] == "!"
		c.Subject = m[4]
	}

	trailers := trailerBlockStart(c.lines)
	if trailers >= 0 {
		c.Trailers = parseTrailers(c.lines[trailers:])
	}

	c.footerStart = findFooter(c.lines, trailers)
	end := len(c.lines)
	if c.footerStart >= 0 {
		end = c.footerStart
		c.Footer = strings.TrimSpace(strings.Join(c.lines[c.footerStart:], "\n"))
		for _, line := range c.lines[c.footerStart:] {
			if breakingPattern.MatchString(line) {
				c.Breaking = true
			}
		}
	}

	for i := 1; i < end; i++ {
		if strings.TrimSpace(c.lines[i]) != "" {
			c.bodyStart = i
			break
		}
	}
	if c.bodyStart >= 0 {
		c.Body = strings.TrimSpace(strings.Join(c.lines[c.bodyStart:end], "\n"))
	}

	return c
}

// findFooter returns the first line of the footer: a BREAKING CHANGE note
// outside the header, or the start of the trailer block, whichever is first.
func findFooter(lines []string, trailers int) int {
	footer := trailers
	for i := 1; i < len(lines); i++ {
		if breakingPattern.MatchString(lines[i]) {
			if footer < 0 || i < footer {
				footer = i
			}
			break
		}
	}
	return footer
}
