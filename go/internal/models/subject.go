package models

import (
	"time"
)

// Category defines a subject category players can quiz on.
type Category string

const (
	CategoryActors      Category = "actors"
	CategorySingers     Category = "singers"
	CategoryFootballers Category = "footballers"
	CategoryBasketball  Category = "basketball"
	CategoryWWE         Category = "wwe"
	CategoryUFC         Category = "ufc"
	CategoryKDrama      Category = "kdrama"
)

// Categories lists every playable category in display order.
func Categories() []Category {
	return []Category{
		CategoryActors,
		CategorySingers,
		CategoryFootballers,
		CategoryBasketball,
		CategoryWWE,
		CategoryUFC,
		CategoryKDrama,
	}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Subject is a quiz item: the celebrity whose zodiac sign the player guesses.
// Subjects are created once at catalog load and never mutated.
type Subject struct {
	Name         string    `json:"name"`
	Birthdate    time.Time `json:"birthdate"`
	Achievements []string  `json:"achievements"`
	Category     Category  `json:"category"`
}
