package services

import (
	"fmt"
	"strings"
	"time"

	"cardapio-server/config"
	"cardapio-server/models"
)

const DISH_OF_DAY_BADGE = "PRATO DO DIA"
const DEFAULT_CATEGORY_LABEL = "Outro"
const DEFAULT_EMOJI = "🍽️"

const STATUS_FOUND_FORMAT = "%d resultado(s) encontrado(s)"
const STATUS_FLAT_EMPTY = "Nenhum prato encontrado 😢"
const STATUS_LOAD_ERROR = "Erro ao carregar o cardápio."
const PLACEHOLDER_DAY_EMPTY = "Nenhum prato encontrado para este dia."

var categoryEmoji = map[string]string{
	"carne":         "🍖",
	"mistura":       "🍖",
	"vegetal":       "🥦",
	"vegetal/fruta": "🥦",
	"fruta":         "🍎",
	"massa":         "🍝",
}

// Card is one rendered dish.
type Card struct {
	Emoji          string          `json:"emoji"`
	Name           string          `json:"nome"`
	CategoryLabel  string          `json:"tipo"`
	Calories       float64         `json:"calorias"`
	Protein        float64         `json:"proteinas"`
	Carbs          float64         `json:"carboidratos"`
	Fat            float64         `json:"gorduras"`
	DishOfDay      bool            `json:"prato_do_dia"`
	AnimationDelay time.Duration   `json:"-"`
	Item           models.MenuItem `json:"-"`
}

// Section is a titled group of cards: the whole flat menu, or one weekday.
type Section struct {
	Key         string `json:"chave"`
	Label       string `json:"titulo"`
	IsToday     bool   `json:"hoje"`
	Cards       []Card `json:"cards"`
	Placeholder string `json:"aviso,omitempty"`
}

// MenuView is the render-ready output of one filter/sort pass.
type MenuView struct {
	Layout   models.MenuLayout `json:"layout"`
	Sections []Section         `json:"secoes"`
	Count    int               `json:"total"`
	Status   string            `json:"status"`
}

// DishOfDay locates the highlighted dish of the flat layout. Until Name is set
// the card at Index of the visible list is marked; afterwards the first visible
// card called Name is marked.
type DishOfDay struct {
	Index int
	Name  string
}

// EmojiFor maps a category onto its glyph; unknown categories get the plate.
func EmojiFor(category string) string {
	if emoji, ok := categoryEmoji[strings.ToLower(strings.TrimSpace(category))]; ok {
		return emoji
	}
	return DEFAULT_EMOJI
}

func newCard(item models.MenuItem, position int) Card {
	label := item.Category
	if label == "" {
		label = DEFAULT_CATEGORY_LABEL
	}
	return Card{
		Emoji:          EmojiFor(item.Category),
		Name:           item.Name,
		CategoryLabel:  label,
		Calories:       item.Calories,
		Protein:        item.Protein,
		Carbs:          item.Carbs,
		Fat:            item.Fat,
		AnimationDelay: time.Duration(position) * config.CARD_ANIMATION_STEP,
		Item:           item,
	}
}

func buildCards(items []models.MenuItem) []Card {
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		cards = append(cards, newCard(item, i))
	}
	return cards
}

// BuildFlatView filters the flat menu and marks at most one dish of the day.
func BuildFlatView(items []models.MenuItem, criteria models.FilterCriteria, dish DishOfDay) MenuView {
	cards := buildCards(Visible(items, criteria))

	if target := dishPosition(cards, dish); target >= 0 {
		cards[target].DishOfDay = true
	}

	section := Section{Key: string(models.LayoutFlat), Cards: cards}
	status := fmt.Sprintf(STATUS_FOUND_FORMAT, len(cards))
	if len(cards) == 0 {
		section.Placeholder = STATUS_FLAT_EMPTY
		status = STATUS_FLAT_EMPTY
	}

	return MenuView{
		Layout:   models.LayoutFlat,
		Sections: []Section{section},
		Count:    len(cards),
		Status:   status,
	}
}

func dishPosition(cards []Card, dish DishOfDay) int {
	if dish.Name != "" {
		for i, card := range cards {
			if card.Name == dish.Name {
				return i
			}
		}
		return -1
	}
	if dish.Index >= 0 && dish.Index < len(cards) {
		return dish.Index
	}
	return -1
}

// BuildWeekView renders every weekday in order, each filtered on its own, and
// marks the section of today. The status always carries the aggregate count.
func BuildWeekView(week map[models.Weekday][]models.MenuItem, criteria models.FilterCriteria, today models.Weekday) MenuView {
	sections := make([]Section, 0, len(models.WeekdayOrder))
	total := 0

	for _, day := range models.WeekdayOrder {
		cards := buildCards(Visible(week[day], criteria))
		section := Section{
			Key:     string(day),
			Label:   day.Label(),
			IsToday: day == today,
			Cards:   cards,
		}
		if len(cards) == 0 {
			section.Placeholder = PLACEHOLDER_DAY_EMPTY
		}
		total += len(cards)
		sections = append(sections, section)
	}

	return MenuView{
		Layout:   models.LayoutWeekly,
		Sections: sections,
		Count:    total,
		Status:   fmt.Sprintf(STATUS_FOUND_FORMAT, total),
	}
}
