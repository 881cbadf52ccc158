package segment

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t\f\v]+`)

// CleanText normalizes raw document text for segmentation: line endings
// become LF, non-breaking spaces become spaces, each line is trimmed with
// inner runs of spaces collapsed, and blank lines are dropped.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = strings.ReplaceAll(content, "\u200b", "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

// Lines splits text into trimmed non-empty lines.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// IsBulletLine reports whether a line starts with a list marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range []string{"-", "*", "•", "·", "◦", "▪"} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

var bulletPrefix = regexp.MustCompile(`^\s*[-*•·◦▪]+\s*`)

// StripBullet removes a leading list marker.
func StripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}
