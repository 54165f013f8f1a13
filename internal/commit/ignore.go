package commit

import "regexp"

// defaultIgnores match messages generated by git or hosting tools.
var defaultIgnores = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^((Merge pull request)|(Merge (.*?) into (.*)|(Merge branch (.*)))(?:\r?\n)*$)`),
	regexp.MustCompile(`(?m)^(Merge tag (.*))(?:\r?\n)*$`),
	regexp.MustCompile(`^(R|r)evert (.*)`),
	regexp.MustCompile(`^(R|r)eapply (.*)`),
	regexp.MustCompile(`^(amend|fixup|squash)!`),
	regexp.MustCompile(`^(Merged (.*?)(in|into) (.*))`),
	regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`),
	regexp.MustCompile(`^Automatic merge(.*)`),
	regexp.MustCompile(`^Auto-merged (.*?) into (.*)`),
}

// IsIgnored reports whether message is a merge, revert, reapply or
// autosquash commit that should not be linted.
func IsIgnored(message string) bool {
	message = Strip(message)
	for _, re := range defaultIgnores {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}
