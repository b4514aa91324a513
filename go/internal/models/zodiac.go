package models

// Element defines the classical element a zodiac sign belongs to.
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// MonthDay is a calendar date without a year component.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// DateRange is an inclusive (month, day) span. Ranges where Start.Month >
// End.Month wrap across the year boundary (e.g. Capricorn, Dec 22 - Jan 19).
type DateRange struct {
	Start MonthDay `json:"start"`
	End   MonthDay `json:"end"`
}

// ZodiacSign is one of the fixed set of twelve signs. Loaded once,
// read-only for the program's lifetime.
type ZodiacSign struct {
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Element   Element   `json:"element"`
	DateRange DateRange `json:"date_range"`
}
