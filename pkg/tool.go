package pkg

import "time"

const (
	// DateLayout is the layout accepted for calendar dates (startDate, endDate)
	DateLayout = "2006-01-02"
	// TimeLayout is the layout used for server stamped times
	TimeLayout = "2006-01-02 15:04:05"
)

// FormatTime format t with TimeLayout
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDate parse a DateLayout string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
