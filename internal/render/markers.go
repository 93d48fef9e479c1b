package render

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	openedFileTag     = "<ide_opened_file>"
	systemReminderTag = "<system-reminder>"
)

var (
	openedFileRe     = regexp.MustCompile(`(?s)<ide_opened_file>(.*?)</ide_opened_file>`)
	systemReminderRe = regexp.MustCompile(`(?s)<system-reminder>.*?</system-reminder>`)
)

// OpenedFiles returns the file path announced by each IDE opened-file span,
// in order of appearance.
func OpenedFiles(text string) []string {
	var paths []string
	for _, m := range openedFileRe.FindAllStringSubmatch(text, -1) {
		paths = append(paths, OpenedFilePath(m[1]))
	}
	return paths
}

// OpenedFilePath pulls the path out of a marker body such as
// "The user opened the file /a/b.go in the IDE. This may or may not ...".
// Bodies that do not follow that sentence are returned as-is.
func OpenedFilePath(body string) string {
	const prefix, suffix = "opened the file ", " in the IDE"
	if i := strings.LastIndex(body, prefix); i >= 0 {
		body = body[i+len(prefix):]
	}
	if i := strings.Index(body, suffix); i >= 0 {
		body = body[:i]
	}
	return body
}

// StripOpenedFiles removes every opened-file span, tags included.
func StripOpenedFiles(text string) string {
	return openedFileRe.ReplaceAllString(text, "")
}

// StripSystemReminders removes every system-reminder span, tags included.
func StripSystemReminders(text string) string {
	return systemReminderRe.ReplaceAllString(text, "")
}

// TextFragments splits one human text block into rendered fragments.
//
// Opened-file spans become "*[Opened file: <path>]*" annotations followed by
// whatever text remains. Reminder spans are dropped, leaving only the
// surrounding text, or nothing. Text without markers is returned untouched.
func TextFragments(text string) []string {
	switch {
	case strings.Contains(text, openedFileTag):
		var frags []string
		for _, path := range OpenedFiles(text) {
			frags = append(frags, fmt.Sprintf("*[Opened file: %s]*", path))
		}
		if rest := strings.TrimSpace(StripSystemReminders(StripOpenedFiles(text))); rest != "" {
			frags = append(frags, rest)
		}
		return frags
	case strings.Contains(text, systemReminderTag):
		if rest := strings.TrimSpace(StripSystemReminders(text)); rest != "" {
			return []string{rest}
		}
		return nil
	default:
		return []string{text}
	}
}
