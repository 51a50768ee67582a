package services

import (
	"testing"

	"cardapio-server/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func names(items []models.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func sampleItems() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Óleo de Coco", Category: "outro", Calories: 120, CaloriesKnown: true},
		{Name: "Banana", Category: "fruta", Calories: 90, CaloriesKnown: true},
		{Name: "Abóbora", Category: "vegetal", Calories: 40, CaloriesKnown: true},
		{Name: "Abacaxi", Category: "fruta", Calories: 50, CaloriesKnown: true},
		{Name: "Salada", Category: "vegetal"},
	}
}

func TestVisible_MaxCalories(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Arroz", Calories: 300, CaloriesKnown: true},
		{Name: "Feijão", Calories: 150, CaloriesKnown: true},
	}

	result := Visible(items, models.FilterCriteria{MaxCalories: intPtr(200)})

	assert.Equal(t, []string{"Feijão"}, names(result))
}

func TestVisible_UnknownCaloriesPassBound(t *testing.T) {
	result := Visible(sampleItems(), models.FilterCriteria{MaxCalories: intPtr(45)})

	assert.Equal(t, []string{"Abóbora", "Salada"}, names(result))
}

func TestVisible_SearchText(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{name: "empty matches all", search: "", expected: names(sampleItems())},
		{name: "case insensitive", search: "ABÓ", expected: []string{"Abóbora"}},
		{name: "trimmed", search: "  banana ", expected: []string{"Banana"}},
		{name: "no match", search: "pizza", expected: []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Visible(sampleItems(), models.FilterCriteria{SearchText: test.search})
			assert.Equal(t, test.expected, names(result))
		})
	}
}

func TestVisible_Category(t *testing.T) {
	result := Visible(sampleItems(), models.FilterCriteria{Category: "fruta"})

	assert.Equal(t, []string{"Banana", "Abacaxi"}, names(result))
}

func TestVisible_SortByNameUsesPortugueseCollation(t *testing.T) {
	result := Visible(sampleItems(), models.FilterCriteria{SortKey: models.SortName})

	assert.Equal(t, []string{"Abacaxi", "Abóbora", "Banana", "Óleo de Coco", "Salada"}, names(result))
}

func TestVisible_SortByCaloriesIsStable(t *testing.T) {
	items := []models.MenuItem{
		{Name: "A", Calories: 100, CaloriesKnown: true},
		{Name: "B", Calories: 50, CaloriesKnown: true},
		{Name: "C", Calories: 100, CaloriesKnown: true},
		{Name: "D"},
	}

	result := Visible(items, models.FilterCriteria{SortKey: models.SortCalories})

	assert.Equal(t, []string{"D", "B", "A", "C"}, names(result))
}

func TestVisible_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	items := sampleItems()
	criteria := models.FilterCriteria{SortKey: models.SortName, Category: "vegetal"}

	first := Visible(items, criteria)
	second := Visible(items, criteria)

	assert.Equal(t, sampleItems(), items)
	assert.Equal(t, first, second)
	assert.Equal(t, first, Visible(first, criteria))
}
