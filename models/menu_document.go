package models

import (
	"encoding/json"
	"log"
)

// MenuLayout tells which shape the menu document had.
type MenuLayout string

const (
	LayoutFlat   MenuLayout = "flat"
	LayoutWeekly MenuLayout = "weekly"
)

// MenuDocument is the loaded menu: a flat list ("alimentos") or a list per weekday
// ("semana"). Read-only once loaded.
type MenuDocument struct {
	Layout MenuLayout
	Items  []MenuItem
	Week   map[Weekday][]MenuItem
}

type rawMenuDocument struct {
	Alimentos json.RawMessage            `json:"alimentos"`
	Semana    map[string]json.RawMessage `json:"semana"`
}

// UnmarshalJSON picks the layout from the top-level key. Elements that are
// not dish objects, and dishes without a name, are skipped one by one.
func (d *MenuDocument) UnmarshalJSON(data []byte) error {
	var raw rawMenuDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Semana != nil {
		week := make(map[Weekday][]MenuItem, len(WeekdayOrder))
		for key, rawItems := range raw.Semana {
			day := Weekday(key)
			if !day.Valid() {
				log.Printf("[MenuDocument] Ignoring unknown weekday key %q", key)
				continue
			}
			week[day] = decodeItems(rawItems, key)
		}
		*d = MenuDocument{Layout: LayoutWeekly, Week: week}
		return nil
	}

	*d = MenuDocument{Layout: LayoutFlat, Items: decodeItems(raw.Alimentos, "alimentos")}
	return nil
}

func decodeItems(raw json.RawMessage, list string) []MenuItem {
	items := []MenuItem{}
	if len(raw) == 0 || string(raw) == "null" {
		return items
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		log.Printf("[MenuDocument] Ignoring malformed list %q: %v", list, err)
		return items
	}
	for i, element := range elements {
		var item MenuItem
		if err := json.Unmarshal(element, &item); err != nil {
			log.Printf("[MenuDocument] Skipping element %d of %q: %v", i, list, err)
			continue
		}
		if item.Name == "" {
			log.Printf("[MenuDocument] Skipping element %d of %q without a name", i, list)
			continue
		}
		items = append(items, item)
	}
	return items
}

// MarshalJSON writes the document back in the shape it was read from.
func (d MenuDocument) MarshalJSON() ([]byte, error) {
	if d.Layout == LayoutWeekly {
		semana := make(map[string][]MenuItem, len(d.Week))
		for day, items := range d.Week {
			semana[string(day)] = items
		}
		return json.Marshal(map[string]any{"semana": semana})
	}
	items := d.Items
	if items == nil {
		items = []MenuItem{}
	}
	return json.Marshal(map[string]any{"alimentos": items})
}

// Count returns the number of items across the whole document.
func (d *MenuDocument) Count() int {
	if d == nil {
		return 0
	}
	n := len(d.Items)
	for _, items := range d.Week {
		n += len(items)
	}
	return n
}

// Day returns the items of a weekday; never nil.
func (d *MenuDocument) Day(day Weekday) []MenuItem {
	if d == nil || d.Week[day] == nil {
		return []MenuItem{}
	}
	return d.Week[day]
}
