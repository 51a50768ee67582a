package models

import "time"

// Weekday is a working-week key of the weekly menu document.
type Weekday string

const (
	Monday    Weekday = "segunda"
	Tuesday   Weekday = "terca"
	Wednesday Weekday = "quarta"
	Thursday  Weekday = "quinta"
	Friday    Weekday = "sexta"
)

// WeekdayOrder is the fixed render order of the weekly layout.
var WeekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayDisplay = map[Weekday]string{
	Monday:    "Segunda-feira",
	Tuesday:   "Terça-feira",
	Wednesday: "Quarta-feira",
	Thursday:  "Quinta-feira",
	Friday:    "Sexta-feira",
}

// Label returns the display name of the day, or the raw key when unknown.
func (d Weekday) Label() string {
	if label, ok := weekdayDisplay[d]; ok {
		return label
	}
	return string(d)
}

// Valid reports whether d is one of the five weekday keys.
func (d Weekday) Valid() bool {
	_, ok := weekdayDisplay[d]
	return ok
}

// TodayKey maps a calendar weekday onto the menu key shown as "today".
// Saturday and Sunday show Friday's menu.
func TodayKey(day time.Weekday) Weekday {
	switch day {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday, time.Saturday, time.Sunday:
		return Friday
	default:
		return Monday
	}
}
