package zodiac

import (
	"time"

	"github.com/mcdev12/zodiarena/go/internal/models"
)

// Classify maps a birthdate to its zodiac sign. Pure and total: every
// valid calendar date matches exactly one sign. If nothing matches
// (malformed input only; catalog dates are author-controlled) the first
// sign in the catalog is returned rather than failing.
func Classify(birthdate time.Time) models.ZodiacSign {
	month := int(birthdate.Month())
	day := birthdate.Day()

	for _, sign := range signs {
		if contains(sign.DateRange, month, day) {
			return sign
		}
	}

	return signs[0]
}

// contains reports whether (month, day) falls inside r. Ranges where the
// start month is after the end month wrap the year boundary and match
// dates in either the tail of the start month or the head of the end month.
func contains(r models.DateRange, month, day int) bool {
	start, end := r.Start, r.End

	if start.Month > end.Month {
		return (month == start.Month && day >= start.Day) ||
			(month == end.Month && day <= end.Day)
	}

	return (month == start.Month && day >= start.Day) ||
		(month == end.Month && day <= end.Day) ||
		(month > start.Month && month < end.Month)
}
