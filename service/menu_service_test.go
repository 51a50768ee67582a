package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenuSource struct {
	doc *models.MenuDocument
	err error
}

func (s *stubMenuSource) Fetch(ctx context.Context) (*models.MenuDocument, error) {
	return s.doc, s.err
}

func (s *stubMenuSource) String() string {
	return "stub"
}

const testTab = "tab-1"

func loadedMenuService(t *testing.T, doc *models.MenuDocument) *MenuService {
	ms := NewMenuService(&stubMenuSource{doc: doc})
	ms.SetLocation(time.UTC)
	require.NoError(t, ms.Load(context.Background()))
	return ms
}

func TestMenuService_LoadFailure(t *testing.T) {
	ms := NewMenuService(&stubMenuSource{err: errors.New("connection refused")})

	err := ms.Load(context.Background())

	assert.ErrorIs(t, err, ErrMenuUnavailable)
	assert.ErrorIs(t, ms.Err(), ErrMenuUnavailable)
	view := ms.View(testTab, models.FilterCriteria{})
	assert.Equal(t, STATUS_LOAD_ERROR, view.Status)
	assert.Zero(t, view.Count)
	assert.Equal(t, STATUS_FLAT_EMPTY, view.Sections[0].Placeholder)
}

func TestMenuService_FlatViewUsesDefaultDishIndex(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutFlat, Items: flatItems(5)})

	view := ms.View(testTab, models.FilterCriteria{})

	assert.Equal(t, []string{"Macarrão"}, badged(view))
	assert.Equal(t, "5 resultado(s) encontrado(s)", view.Status)
	assert.Equal(t, 180*time.Millisecond, ms.SearchDebounce())
}

func TestMenuService_RandomizeDishOfDay(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutFlat, Items: flatItems(5)})
	ms.pick = func(n int) int {
		assert.Equal(t, 5, n)
		return 1
	}

	name, ok := ms.RandomizeDishOfDay(testTab)

	require.True(t, ok)
	assert.Equal(t, "Feijão", name)
	assert.Equal(t, []string{"Feijão"}, badged(ms.View(testTab, models.FilterCriteria{})))
	assert.Empty(t, badged(ms.View(testTab, models.FilterCriteria{SearchText: "arroz"})))
}

func TestMenuService_DishOfDayIsPerTab(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutFlat, Items: flatItems(5)})
	ms.pick = func(n int) int { return 1 }

	_, ok := ms.RandomizeDishOfDay("tab-a")
	require.True(t, ok)

	assert.Equal(t, []string{"Feijão"}, badged(ms.View("tab-a", models.FilterCriteria{})))
	assert.Equal(t, []string{"Macarrão"}, badged(ms.View("tab-b", models.FilterCriteria{})))
	_, ok = ms.RandomizeDishOfDay("")
	assert.False(t, ok)
}

func TestMenuService_SweepForgetsOldDishes(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutFlat, Items: flatItems(5)})
	ms.pick = func(n int) int { return 1 }
	current := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	ms.now = func() time.Time { return current }
	ms.RandomizeDishOfDay("old")
	current = current.Add(2 * time.Hour)
	ms.RandomizeDishOfDay("fresh")

	assert.Equal(t, 1, ms.Sweep(time.Hour))

	assert.Equal(t, []string{"Macarrão"}, badged(ms.View("old", models.FilterCriteria{})))
	assert.Equal(t, []string{"Feijão"}, badged(ms.View("fresh", models.FilterCriteria{})))
}

func TestMenuService_RandomizeDishOfDay_EmptyMenu(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutFlat})

	_, ok := ms.RandomizeDishOfDay(testTab)

	assert.False(t, ok)
}

func TestMenuService_WeeklyView(t *testing.T) {
	doc := &models.MenuDocument{
		Layout: models.LayoutWeekly,
		Week: map[models.Weekday][]models.MenuItem{
			models.Monday: {{Name: "Brócolis", Category: "vegetal"}},
			models.Friday: {{Name: "Peixe", Category: "carne"}},
		},
	}
	ms := loadedMenuService(t, doc)
	// 2026-10-17 is a Saturday.
	ms.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }

	view := ms.View(testTab, models.FilterCriteria{})

	assert.Equal(t, models.Friday, ms.Today())
	assert.True(t, view.Sections[4].IsToday)
	assert.Equal(t, 2, view.Count)
	assert.Equal(t, 160*time.Millisecond, ms.SearchDebounce())
	assert.Equal(t, []string{"Brócolis", "Peixe"}, names(ms.VisibleItems(models.FilterCriteria{})))

	_, ok := ms.RandomizeDishOfDay(testTab)
	assert.False(t, ok)
}

func TestMenuService_TodayUsesCafeteriaTimezone(t *testing.T) {
	ms := loadedMenuService(t, &models.MenuDocument{Layout: models.LayoutWeekly, Week: map[models.Weekday][]models.MenuItem{}})
	// Monday 01:00 UTC is still Sunday evening three hours west.
	ms.now = func() time.Time { return time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC) }

	ms.SetLocation(time.UTC)
	assert.Equal(t, models.Monday, ms.Today())

	ms.SetLocation(time.FixedZone("BRT", -3*60*60))
	assert.Equal(t, models.Friday, ms.Today())
	assert.True(t, ms.View(testTab, models.FilterCriteria{}).Sections[4].IsToday)
}

func TestMenuService_Categories(t *testing.T) {
	doc := &models.MenuDocument{
		Layout: models.LayoutWeekly,
		Week: map[models.Weekday][]models.MenuItem{
			models.Monday:   {{Name: "Brócolis", Category: "vegetal"}, {Name: "Pudim"}},
			models.Thursday: {{Name: "Bife", Category: "carne"}, {Name: "Couve", Category: "vegetal"}},
		},
	}
	ms := loadedMenuService(t, doc)

	assert.Equal(t, []string{"carne", "vegetal"}, ms.Categories())
}
