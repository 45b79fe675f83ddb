package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the current date in the format every stored date uses.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FirstNonEmpty returns the first non-empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
