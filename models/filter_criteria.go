package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Query/form argument names, shared by the page, the JSON API and the socket events.
const (
	SEARCH_ARG       = "busca"
	MAX_CALORIES_ARG = "calorias"
	CATEGORY_ARG     = "tipo"
	SORT_ARG         = "ordenar"
)

// SortKey selects the ordering of the visible items.
type SortKey string

const (
	SortNone     SortKey = ""
	SortName     SortKey = "nome"
	SortCalories SortKey = "calorias"
)

// ParseSortKey maps unknown values onto SortNone.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortName:
		return SortName
	case SortCalories:
		return SortCalories
	default:
		return SortNone
	}
}

// FilterCriteria is derived from the UI controls on every render pass.
type FilterCriteria struct {
	SearchText  string
	MaxCalories *int
	Category    string
	SortKey     SortKey
}

// FilterCriteriaFromValues reads the criteria from query or form values.
// A max-calories value without an integer prefix leaves the bound unset.
func FilterCriteriaFromValues(vals url.Values) FilterCriteria {
	c := FilterCriteria{
		SearchText: vals.Get(SEARCH_ARG),
		Category:   vals.Get(CATEGORY_ARG),
		SortKey:    ParseSortKey(vals.Get(SORT_ARG)),
	}
	c.SetMaxCalories(vals.Get(MAX_CALORIES_ARG))
	return c
}

// SetMaxCalories parses s the way the browser's parseInt does.
func (c *FilterCriteria) SetMaxCalories(s string) {
	s = strings.TrimSpace(s)
	end := numericPrefixLen(s, false)
	if end == 0 {
		c.MaxCalories = nil
		return
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		c.MaxCalories = nil
		return
	}
	c.MaxCalories = &n
}

// ToValues renders the criteria back into query values. Zero-values are omitted.
func (c FilterCriteria) ToValues() url.Values {
	q := url.Values{}
	if c.SearchText != "" {
		q.Set(SEARCH_ARG, c.SearchText)
	}
	if c.MaxCalories != nil {
		q.Set(MAX_CALORIES_ARG, strconv.Itoa(*c.MaxCalories))
	}
	if c.Category != "" {
		q.Set(CATEGORY_ARG, c.Category)
	}
	if c.SortKey != SortNone {
		q.Set(SORT_ARG, string(c.SortKey))
	}
	return q
}

// MaxCaloriesText is the value shown back in the max-calories input.
func (c FilterCriteria) MaxCaloriesText() string {
	if c.MaxCalories == nil {
		return ""
	}
	return strconv.Itoa(*c.MaxCalories)
}
