package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"cardapio-server/api/menusource"
	"cardapio-server/config"
	"cardapio-server/models"
)

var ErrMenuUnavailable = errors.New("menu unavailable")

// MenuService owns the menu document loaded at startup and the dish of the day.
type MenuService struct {
	source menusource.MenuSource

	mu      sync.RWMutex
	doc     *models.MenuDocument
	loadErr error
	dishes  map[string]tabDish
	loc     *time.Location

	now  func() time.Time
	pick func(n int) int
}

// tabDish is the dish of the day a tab picked, if it ever randomised.
type tabDish struct {
	dish     DishOfDay
	pickedAt time.Time
}

// NewMenuService constructs a MenuService reading from source. Call Load once before serving.
func NewMenuService(source menusource.MenuSource) *MenuService {
	return &MenuService{
		source: source,
		doc:    &models.MenuDocument{Layout: models.LayoutFlat},
		dishes: make(map[string]tabDish),
		loc:    time.Local,
		now:    time.Now,
		pick:   rand.Intn,
	}
}

// Load fetches the document. On failure the menu stays empty and views carry the error status.
func (s *MenuService) Load(ctx context.Context) error {
	log.Printf("[MenuService] Loading menu from %s", s.source)
	doc, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("[MenuService] Failed to load menu: %v", err)
		s.doc = &models.MenuDocument{Layout: models.LayoutFlat}
		s.loadErr = fmt.Errorf("%w: %v", ErrMenuUnavailable, err)
		return s.loadErr
	}

	s.doc = doc
	s.loadErr = nil
	log.Printf("[MenuService] Loaded %s menu with %d items", doc.Layout, doc.Count())
	return nil
}

// Err returns the load failure, if any.
func (s *MenuService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Document returns the loaded document. Callers must not modify it.
func (s *MenuService) Document() *models.MenuDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *MenuService) Layout() models.MenuLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Layout
}

// SearchDebounce is the input debounce delay of the loaded layout.
func (s *MenuService) SearchDebounce() time.Duration {
	if s.Layout() == models.LayoutWeekly {
		return config.WEEKLY_SEARCH_DEBOUNCE
	}
	return config.FLAT_SEARCH_DEBOUNCE
}

// SetLocation sets the cafeteria time zone deciding which weekday is today.
func (s *MenuService) SetLocation(loc *time.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc = loc
}

// Today is the weekday key of the current date in the cafeteria time zone;
// weekends map onto Friday.
func (s *MenuService) Today() models.Weekday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.today()
}

func (s *MenuService) today() models.Weekday {
	return models.TodayKey(s.now().In(s.loc).Weekday())
}

// View runs the filter/sort pass over the loaded document for one tab.
func (s *MenuService) View(tabID string, criteria models.FilterCriteria) MenuView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var view MenuView
	if s.doc.Layout == models.LayoutWeekly {
		view = BuildWeekView(s.doc.Week, criteria, s.today())
	} else {
		view = BuildFlatView(s.doc.Items, criteria, s.dishOfDay(tabID))
	}
	if s.loadErr != nil {
		view.Status = STATUS_LOAD_ERROR
	}
	return view
}

// VisibleItems flattens the visible items of every section, in render order.
func (s *MenuService) VisibleItems(criteria models.FilterCriteria) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.Layout != models.LayoutWeekly {
		return Visible(s.doc.Items, criteria)
	}
	var out []models.MenuItem
	for _, day := range models.WeekdayOrder {
		out = append(out, Visible(s.doc.Week[day], criteria)...)
	}
	return out
}

func (s *MenuService) dishOfDay(tabID string) DishOfDay {
	if picked, ok := s.dishes[tabID]; ok {
		return picked.dish
	}
	return DishOfDay{Index: config.DEFAULT_DISH_OF_DAY_INDEX}
}

// RandomizeDishOfDay picks a uniformly random item of the unfiltered flat menu
// as the dish of the day of one tab. Other tabs keep their own. It reports
// false when the menu is empty or weekly, or the tab id is empty.
func (s *MenuService) RandomizeDishOfDay(tabID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tabID == "" || s.doc.Layout == models.LayoutWeekly || len(s.doc.Items) == 0 {
		return "", false
	}
	chosen := s.doc.Items[s.pick(len(s.doc.Items))]
	s.dishes[tabID] = tabDish{dish: DishOfDay{Index: -1, Name: chosen.Name}, pickedAt: s.now()}
	log.Printf("[MenuService] Dish of the day of tab %s is now %q", tabID, chosen.Name)
	return chosen.Name, true
}

// Sweep forgets dishes picked longer than ttl ago; those tabs fall back to the default.
func (s *MenuService) Sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	dropped := 0
	for tabID, picked := range s.dishes {
		if picked.pickedAt.Before(cutoff) {
			delete(s.dishes, tabID)
			dropped++
		}
	}
	return dropped
}

// Categories lists the distinct categories of the loaded menu, sorted.
func (s *MenuService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	collect := func(items []models.MenuItem) {
		for _, item := range items {
			if item.Category != "" {
				seen[item.Category] = struct{}{}
			}
		}
	}
	collect(s.doc.Items)
	for _, day := range models.WeekdayOrder {
		collect(s.doc.Week[day])
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
