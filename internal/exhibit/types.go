package exhibit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBlankInput is returned by UserInput.Validate when a field is empty.
var ErrBlankInput = errors.New("input field is blank")

// UserInput holds the three form fields a placard is generated from.
type UserInput struct {
	Name  string
	Hobby string
	Worry string
}

// Validate reports the first blank field, if any.
func (in UserInput) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"hobby", in.Hobby},
		{"worry", in.Worry},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s: %w", field.name, ErrBlankInput)
		}
	}
	return nil
}

// Stats are the four percentage-like bars shown on a placard. Values are
// displayed as received; nothing clamps them to 0-100.
type Stats struct {
	Stamina      float64 `json:"stamina"`
	Intelligence float64 `json:"intelligence"`
	Laziness     float64 `json:"laziness"`
	Charm        float64 `json:"charm"`
}

// Data is a generated placard.
type Data struct {
	ScientificName string `json:"scientificName"`
	DangerLevel    string `json:"dangerLevel"`
	Classification string `json:"classification"`
	Description    string `json:"description"`
	FunFact        string `json:"funFact"`
	Stats          Stats  `json:"stats"`
}

// StatValue pairs a stat label with its value, in display order.
type StatValue struct {
	Key   string
	Label string
	Value float64
}

// Values lists the stats in the order placards show them.
func (s Stats) Values() []StatValue {
	return []StatValue{
		{Key: "stamina", Label: StatLabels.Stamina, Value: s.Stamina},
		{Key: "intelligence", Label: StatLabels.Intelligence, Value: s.Intelligence},
		{Key: "laziness", Label: StatLabels.Laziness, Value: s.Laziness},
		{Key: "charm", Label: StatLabels.Charm, Value: s.Charm},
	}
}

// Percent returns v as a 0-1 fraction for progress bars. Out-of-range values
// are pinned only for drawing; the stored stat is left untouched.
func Percent(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 100:
		return 1
	default:
		return v / 100
	}
}
