package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var msDatePattern = regexp.MustCompile(`/Date\((\d+)`)

func msEpoch(s string) (time.Time, bool) {
	matches := msDatePattern.FindStringSubmatch(s)
	if len(matches) < 2 {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// MSDate converts a legacy "/Date(1700000000000+0000)/" token to a UTC
// calendar date. The second return reports whether the token was recognized.
func MSDate(s string) (string, bool) {
	t, ok := msEpoch(s)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// MSDateTime is MSDate with the time of day preserved.
func MSDateTime(s string) (string, bool) {
	t, ok := msEpoch(s)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02T15:04:05Z"), true
}

var isoDateLayouts = []string{
	"02 Jan 06",
	"2 Jan 06",
	"02 Jan 2006",
	"2 Jan 2006",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
}

// ISODate normalizes the date formats seen in report headers and CLI input to
// YYYY-MM-DD. Unparseable input yields the empty string, never an error, so
// month-prefix filtering downstream stays well defined.
func ISODate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
