// Package validate holds the checks every transaction must pass before it
// is written.
package validate

import (
	"math"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// IsValidDate reports whether s is a real calendar date written as
// YYYY-MM-DD. Leap days are accepted only in leap years.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// time.Parse rejects days past the end of the month.
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsPositiveNumber reports whether x is a finite number strictly greater
// than zero.
func IsPositiveNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x > 0
}
