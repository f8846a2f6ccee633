package datasource

import (
	"strings"
	"time"
)

// Date styles accepted by FormatDate.
const (
	StyleLong  = "long"
	StyleShort = "short"
)

var dateLayouts = []struct {
	layout string
	long   string
	short  string
}{
	{"2006-01-02", "January 2, 2006", "Jan 2, 2006"},
	{"2006.01.02", "January 2, 2006", "Jan 2, 2006"},
	{"2006/01/02", "January 2, 2006", "Jan 2, 2006"},
	{"2006-01", "January 2006", "Jan 2006"},
	{"2006.01", "January 2006", "Jan 2006"},
	{"2006", "2006", "2006"},
}

// FormatDate renders a content date. Unparseable dates are returned as is.
// Any style other than "short" renders the long form.
func FormatDate(date, style string) string {
	s := strings.TrimSpace(date)
	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if style == StyleShort {
			return t.Format(l.short)
		}
		return t.Format(l.long)
	}
	return date
}
