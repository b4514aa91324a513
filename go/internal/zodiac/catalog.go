package zodiac

import (
	"github.com/mcdev12/zodiarena/go/internal/models"
)

// signs is the fixed catalog of twelve signs, in tropical order starting
// at Aries. Capricorn is the only range that wraps the year boundary.
var signs = []models.ZodiacSign{
	{
		Name:    "Aries",
		Symbol:  "♈",
		Element: models.ElementFire,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 3, Day: 21},
			End:   models.MonthDay{Month: 4, Day: 19},
		},
	},
	{
		Name:    "Taurus",
		Symbol:  "♉",
		Element: models.ElementEarth,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 4, Day: 20},
			End:   models.MonthDay{Month: 5, Day: 20},
		},
	},
	{
		Name:    "Gemini",
		Symbol:  "♊",
		Element: models.ElementAir,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 5, Day: 21},
			End:   models.MonthDay{Month: 6, Day: 20},
		},
	},
	{
		Name:    "Cancer",
		Symbol:  "♋",
		Element: models.ElementWater,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 6, Day: 21},
			End:   models.MonthDay{Month: 7, Day: 22},
		},
	},
	{
		Name:    "Leo",
		Symbol:  "♌",
		Element: models.ElementFire,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 7, Day: 23},
			End:   models.MonthDay{Month: 8, Day: 22},
		},
	},
	{
		Name:    "Virgo",
		Symbol:  "♍",
		Element: models.ElementEarth,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 8, Day: 23},
			End:   models.MonthDay{Month: 9, Day: 22},
		},
	},
	{
		Name:    "Libra",
		Symbol:  "♎",
		Element: models.ElementAir,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 9, Day: 23},
			End:   models.MonthDay{Month: 10, Day: 22},
		},
	},
	{
		Name:    "Scorpio",
		Symbol:  "♏",
		Element: models.ElementWater,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 10, Day: 23},
			End:   models.MonthDay{Month: 11, Day: 21},
		},
	},
	{
		Name:    "Sagittarius",
		Symbol:  "♐",
		Element: models.ElementFire,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 11, Day: 22},
			End:   models.MonthDay{Month: 12, Day: 21},
		},
	},
	{
		Name:    "Capricorn",
		Symbol:  "♑",
		Element: models.ElementEarth,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 12, Day: 22},
			End:   models.MonthDay{Month: 1, Day: 19},
		},
	},
	{
		Name:    "Aquarius",
		Symbol:  "♒",
		Element: models.ElementAir,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 1, Day: 20},
			End:   models.MonthDay{Month: 2, Day: 18},
		},
	},
	{
		Name:    "Pisces",
		Symbol:  "♓",
		Element: models.ElementWater,
		DateRange: models.DateRange{
			Start: models.MonthDay{Month: 2, Day: 19},
			End:   models.MonthDay{Month: 3, Day: 20},
		},
	},
}

// Signs returns the sign catalog. Callers must not mutate the result.
func Signs() []models.ZodiacSign {
	return signs
}

// SignNames returns the twelve sign names in catalog order, for rendering
// answer options.
func SignNames() []string {
	names := make([]string, len(signs))
	for i, s := range signs {
		names[i] = s.Name
	}
	return names
}
