// Package jalali formats creation timestamps in the Jalali (solar) calendar,
// Tehran local time. The formatted string is what gets persisted in the
// created column.
package jalali

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

const layout = "yyyy-MM-dd HH:mm:ss"

// Now returns the current Tehran time as a Jalali timestamp string,
// e.g. "1404-02-29 11:26:15".
func Now() string {
	return Format(time.Now())
}

// Format converts t to Tehran local time and renders it in the Jalali
// calendar.
func Format(t time.Time) string {
	return ptime.New(t.In(ptime.Iran())).Format(layout)
}
