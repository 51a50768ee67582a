package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"cardapio-server/models"
	services "cardapio-server/service"
	"cardapio-server/util"
	"cardapio-server/view"

	"github.com/gorilla/websocket"
)

// Event and message types exchanged over /ws/events.
const (
	EVENT_INPUT        = "input"
	EVENT_CHANGE       = "change"
	EVENT_CLICK        = "click"
	EVENT_SYSTEM_THEME = "system-theme"

	ACTION_DISH_OF_DAY  = "dish-of-day"
	ACTION_TOGGLE_THEME = "toggle-theme"

	MESSAGE_RENDER = "render"
	MESSAGE_THEME  = "theme"
	MESSAGE_ERROR  = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// uiEvent is the incoming WebSocket message format.
type uiEvent struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type    string `json:"type"`
	HTML    string `json:"html,omitempty"`
	Status  string `json:"status,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message,omitempty"`
}

type EventsHandler struct {
	menuService  *services.MenuService
	themeService *services.ThemeService
}

func NewEventsHandler(menuService *services.MenuService, themeService *services.ThemeService) *EventsHandler {
	return &EventsHandler{menuService: menuService, themeService: themeService}
}

// tabSession is the state of one open page. Events are handled one at a
// time under mu; writes to the socket are serialised by writeMu.
type tabSession struct {
	handler   *EventsHandler
	conn      *websocket.Conn
	profileID string
	tabID     string
	debouncer *util.Debouncer

	mu       sync.Mutex
	criteria models.FilterCriteria
	theme    models.ThemeState

	writeMu sync.Mutex
}

// HandleEvents handles GET /ws/events?tab=&busca=&calorias=&tipo=&ordenar=
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[EventsHandler] websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	profileID := ProfileID(r)
	session := &tabSession{
		handler:   h,
		conn:      conn,
		profileID: profileID,
		tabID:     TabID(r),
		debouncer: util.NewDebouncer(h.menuService.SearchDebounce()),
		criteria:  models.FilterCriteriaFromValues(r.URL.Query()),
		theme:     h.themeService.Load(profileID, SystemPrefersDark(r)),
	}
	defer session.debouncer.Stop()
	log.Printf("[EventsHandler] Tab %s connected", session.tabID)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[EventsHandler] websocket read: %v", err)
			}
			return
		}

		var event uiEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			session.send(serverMessage{Type: MESSAGE_ERROR, Message: "invalid message format"})
			continue
		}
		session.handle(event)
	}
}

func (s *tabSession) handle(event uiEvent) {
	switch event.Type {
	case EVENT_INPUT:
		s.mu.Lock()
		s.applyField(event.Field, event.Value)
		s.mu.Unlock()
		s.debouncer.Trigger(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.render()
		})
	case EVENT_CHANGE:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.debouncer.Stop()
		s.applyField(event.Field, event.Value)
		s.render()
	case EVENT_CLICK:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.click(event.Value)
	case EVENT_SYSTEM_THEME:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.handler.themeService.Refresh(s.profileID, &s.theme)
		if s.theme.SystemChanged(event.Value == string(models.ModeDark)) {
			s.pushTheme()
		}
	default:
		s.send(serverMessage{Type: MESSAGE_ERROR, Message: "unknown event type: " + event.Type})
	}
}

func (s *tabSession) applyField(field, value string) {
	switch field {
	case models.SEARCH_ARG:
		s.criteria.SearchText = value
	case models.MAX_CALORIES_ARG:
		s.criteria.SetMaxCalories(value)
	case models.CATEGORY_ARG:
		s.criteria.Category = value
	case models.SORT_ARG:
		s.criteria.SortKey = models.ParseSortKey(value)
	default:
		log.Printf("[EventsHandler] Ignoring unknown field %q", field)
	}
}

func (s *tabSession) click(action string) {
	switch action {
	case ACTION_DISH_OF_DAY:
		s.handler.menuService.RandomizeDishOfDay(s.tabID)
		s.render()
	case ACTION_TOGGLE_THEME:
		s.handler.themeService.Refresh(s.profileID, &s.theme)
		if _, err := s.handler.themeService.Toggle(s.profileID, &s.theme); err != nil {
			log.Printf("[EventsHandler] Error storing theme for tab %s: %v", s.tabID, err)
		}
		s.pushTheme()
	default:
		s.send(serverMessage{Type: MESSAGE_ERROR, Message: "unknown action: " + action})
	}
}

// render must be called with mu held.
func (s *tabSession) render() {
	menu := s.handler.menuService.View(s.tabID, s.criteria)
	html, err := view.MenuFragment(menu)
	if err != nil {
		log.Printf("[EventsHandler] Error rendering menu for tab %s: %v", s.tabID, err)
		return
	}
	s.send(serverMessage{Type: MESSAGE_RENDER, HTML: html, Status: menu.Status})
}

// pushTheme must be called with mu held.
func (s *tabSession) pushTheme() {
	s.send(serverMessage{Type: MESSAGE_THEME, Mode: string(s.theme.Mode()), Label: s.theme.ButtonLabel()})
}

func (s *tabSession) send(msg serverMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		log.Printf("[EventsHandler] websocket write: %v", err)
	}
}
