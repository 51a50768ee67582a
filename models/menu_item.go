package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MenuItem is a single dish of the menu document. Numeric fields are never negative.
type MenuItem struct {
	Name     string  `json:"nome"`
	Category string  `json:"tipo,omitempty"`
	Calories float64 `json:"calorias"`
	Protein  float64 `json:"proteinas"`
	Carbs    float64 `json:"carboidratos"`
	Fat      float64 `json:"gorduras"`

	// CaloriesKnown is false when "calorias" was absent or had no integer prefix.
	// The calorie filter never drops such items.
	CaloriesKnown bool `json:"-"`
}

// rawMenuItem accepts numbers, numeric strings and nulls for the nutrition fields.
type rawMenuItem struct {
	Name     json.RawMessage `json:"nome"`
	Category json.RawMessage `json:"tipo"`
	Calories json.RawMessage `json:"calorias"`
	Protein  json.RawMessage `json:"proteinas"`
	Carbs    json.RawMessage `json:"carboidratos"`
	Fat      json.RawMessage `json:"gorduras"`
}

// UnmarshalJSON coerces malformed fields to safe defaults instead of failing.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	var raw rawMenuItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = MenuItem{
		Name:          strings.TrimSpace(rawText(raw.Name)),
		Category:      strings.TrimSpace(rawText(raw.Category)),
		Calories:      coerceNumber(raw.Calories),
		Protein:       coerceNumber(raw.Protein),
		Carbs:         coerceNumber(raw.Carbs),
		Fat:           coerceNumber(raw.Fat),
		CaloriesKnown: hasIntPrefix(raw.Calories),
	}
	return nil
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// coerceNumber returns the leading numeric value of raw, or 0.
func coerceNumber(raw json.RawMessage) float64 {
	s := strings.TrimSpace(rawText(raw))
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return clampNonNegative(f)
	}
	s = strings.Replace(s, ",", ".", 1)
	end := numericPrefixLen(s, true)
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return clampNonNegative(f)
}

func clampNonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// hasIntPrefix mirrors the browser's parseInt: leading whitespace, optional sign,
// then at least one digit; anything after the digits is ignored.
func hasIntPrefix(raw json.RawMessage) bool {
	return numericPrefixLen(strings.TrimSpace(rawText(raw)), false) > 0
}

func numericPrefixLen(s string, allowFraction bool) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if allowFraction && i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			digits++
		}
		if j > i+1 {
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}
