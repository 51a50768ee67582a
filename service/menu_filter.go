package services

import (
	"sort"
	"strings"

	"cardapio-server/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Visible returns the items matching the criteria, in the requested order.
// Filters run text → calories → category, then the sort. The input slice is never modified.
func Visible(items []models.MenuItem, criteria models.FilterCriteria) []models.MenuItem {
	search := strings.ToLower(strings.TrimSpace(criteria.SearchText))

	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		// Items without a parseable calorie value never violate the bound.
		if criteria.MaxCalories != nil && item.CaloriesKnown && item.Calories > float64(*criteria.MaxCalories) {
			continue
		}
		if criteria.Category != "" && item.Category != criteria.Category {
			continue
		}
		out = append(out, item)
	}

	switch criteria.SortKey {
	case models.SortName:
		collator := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case models.SortCalories:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Calories < out[j].Calories
		})
	}
	return out
}
