package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cardapio-server/config"
	"cardapio-server/dao/storage"
	"cardapio-server/db"
	"cardapio-server/models"
	"cardapio-server/server/handlers"
	services "cardapio-server/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenuSource struct {
	doc *models.MenuDocument
}

func (s *stubMenuSource) Fetch(ctx context.Context) (*models.MenuDocument, error) {
	return s.doc, nil
}

func (s *stubMenuSource) String() string {
	return "stub"
}

func newTestRouter(t *testing.T, doc *models.MenuDocument) (*Router, *mux.Router) {
	menuService := services.NewMenuService(&stubMenuSource{doc: doc})
	require.NoError(t, menuService.Load(context.Background()))

	dao := storage.NewProfileStorageDAO(db.NewMemoryKVClient(context.Background()))
	commentService := services.NewCommentService(dao)
	themeService := services.NewThemeService(dao)
	adminGate := services.NewAdminGate(config.DEFAULT_ADMIN_SECRET)
	pageBuilder := handlers.NewPageBuilder(menuService, commentService, themeService, adminGate)

	muxRouter := mux.NewRouter()
	router := NewRouter(
		handlers.NewMenuHandler(menuService, pageBuilder),
		handlers.NewCommentHandler(commentService, adminGate, pageBuilder),
		handlers.NewAdminHandler(adminGate, pageBuilder),
		handlers.NewThemeHandler(themeService),
		handlers.NewEventsHandler(menuService, themeService),
		muxRouter,
	)
	return router, muxRouter
}

func flatDocument() *models.MenuDocument {
	return &models.MenuDocument{
		Layout: models.LayoutFlat,
		Items: []models.MenuItem{
			{Name: "Arroz", Category: "massa", Calories: 300, CaloriesKnown: true},
			{Name: "Feijão", Category: "vegetal", Calories: 150, CaloriesKnown: true},
			{Name: "Frango", Category: "carne", Calories: 220, CaloriesKnown: true},
		},
	}
}

func TestRouter_RegisterRoutes(t *testing.T) {
	appRouter, router := newTestRouter(t, flatDocument())
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		contains   string
	}{
		{name: "Page", method: "GET", path: "/", statusCode: http.StatusOK, contains: "3 resultado(s) encontrado(s)"},
		{name: "Menu JSON", method: "GET", path: "/v1/menu?busca=arroz", statusCode: http.StatusOK, contains: `"total":1`},
		{name: "Menu document", method: "GET", path: "/v1/menu/document", statusCode: http.StatusOK, contains: `"alimentos":[{"nome":"Arroz"`},
		{name: "Menu chart", method: "GET", path: "/v1/menu/chart", statusCode: http.StatusOK, contains: "Calorias (kcal)"},
		{name: "Dish of the day", method: "POST", path: "/v1/menu/dish-of-the-day", statusCode: http.StatusSeeOther},
		{name: "Theme toggle", method: "POST", path: "/v1/theme/toggle", statusCode: http.StatusSeeOther},
		{name: "Empty comment", method: "POST", path: "/v1/comments", statusCode: http.StatusBadRequest, contains: "Informe seu nome."},
		{name: "Delete without admin", method: "POST", path: "/v1/comments/0/delete", statusCode: http.StatusForbidden},
		{name: "Delete with bad index", method: "POST", path: "/v1/comments/abc/delete", statusCode: http.StatusNotFound},
		{name: "Wrong admin secret", method: "POST", path: "/v1/admin/login", statusCode: http.StatusUnauthorized},
		{name: "Logout", method: "POST", path: "/v1/admin/logout", statusCode: http.StatusSeeOther},
		{name: "Ping Route", method: "GET", path: "/ping", statusCode: http.StatusOK, contains: `"pong"`},
		{name: "Wrong method", method: "POST", path: "/ping", statusCode: http.StatusMethodNotAllowed},
		{name: "Invalid Route", method: "GET", path: "/invalid", statusCode: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.contains != "" {
				assert.Contains(t, rr.Body.String(), test.contains)
			}
		})
	}
}

type eventsMessage struct {
	Type    string `json:"type"`
	HTML    string `json:"html"`
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

func newEventsServer(t *testing.T, doc *models.MenuDocument) *httptest.Server {
	appRouter, router := newTestRouter(t, doc)
	appRouter.RegisterRoutes()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dialTab(t *testing.T, srv *httptest.Server, query string, header http.Header) *websocket.Conn {
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func dialEvents(t *testing.T, doc *models.MenuDocument, query string) *websocket.Conn {
	return dialTab(t, newEventsServer(t, doc), query, nil)
}

func readMessage(t *testing.T, conn *websocket.Conn) eventsMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg eventsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestEvents_ChangeRendersImmediately(t *testing.T) {
	conn := dialEvents(t, flatDocument(), "")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "change", "field": "tipo", "value": "vegetal"}))

	msg := readMessage(t, conn)
	assert.Equal(t, "render", msg.Type)
	assert.Equal(t, "1 resultado(s) encontrado(s)", msg.Status)
	assert.Contains(t, msg.HTML, "Feijão")
	assert.NotContains(t, msg.HTML, "Arroz")
}

func TestEvents_InputIsDebounced(t *testing.T) {
	conn := dialEvents(t, flatDocument(), "?calorias=250")

	for _, value := range []string{"f", "fr", "fra"} {
		require.NoError(t, conn.WriteJSON(map[string]string{"type": "input", "field": "busca", "value": value}))
	}

	msg := readMessage(t, conn)
	assert.Equal(t, "render", msg.Type)
	assert.Equal(t, "1 resultado(s) encontrado(s)", msg.Status)
	assert.Contains(t, msg.HTML, "Frango")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(400*time.Millisecond)))
	var extra eventsMessage
	assert.Error(t, conn.ReadJSON(&extra), "a burst of input must produce a single render")
}

func TestEvents_ThemeToggleAndSystemSignal(t *testing.T) {
	conn := dialEvents(t, flatDocument(), "")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "system-theme", "value": "dark"}))
	msg := readMessage(t, conn)
	assert.Equal(t, "theme", msg.Type)
	assert.Equal(t, "dark", msg.Mode)
	assert.Equal(t, "☀️ Tema Claro", msg.Label)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "click", "value": "toggle-theme"}))
	msg = readMessage(t, conn)
	assert.Equal(t, "light", msg.Mode)

	// An explicit choice now wins over the system signal, so nothing is pushed.
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "system-theme", "value": "light"}))
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "bogus"}))
	msg = readMessage(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "unknown event type")
}

func TestEvents_ThemeChoiceFromAnotherTabSilencesSystemSignal(t *testing.T) {
	srv := newEventsServer(t, flatDocument())
	header := http.Header{}
	header.Set("Cookie", config.PROFILE_COOKIE_NAME+"="+uuid.NewString())
	tabA := dialTab(t, srv, "", header)
	tabB := dialTab(t, srv, "", header)

	require.NoError(t, tabA.WriteJSON(map[string]string{"type": "click", "value": "toggle-theme"}))
	msg := readMessage(t, tabA)
	assert.Equal(t, "theme", msg.Type)
	assert.Equal(t, "dark", msg.Mode)

	require.NoError(t, tabB.WriteJSON(map[string]string{"type": "system-theme", "value": "dark"}))
	require.NoError(t, tabB.WriteJSON(map[string]string{"type": "system-theme", "value": "light"}))
	require.NoError(t, tabB.WriteJSON(map[string]string{"type": "bogus"}))
	msg = readMessage(t, tabB)
	assert.Equal(t, "error", msg.Type, "system signal must be ignored once the profile has a stored choice")

	// Toggling tab B flips the stored choice, not its stale copy.
	require.NoError(t, tabB.WriteJSON(map[string]string{"type": "click", "value": "toggle-theme"}))
	msg = readMessage(t, tabB)
	assert.Equal(t, "light", msg.Mode)
}

func TestEvents_DishOfDayClick(t *testing.T) {
	conn := dialEvents(t, flatDocument(), "")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "click", "value": "dish-of-day"}))

	msg := readMessage(t, conn)
	assert.Equal(t, "render", msg.Type)
	assert.Equal(t, 1, strings.Count(msg.HTML, "prato-badge"))
}

func TestEvents_WeeklyLayout(t *testing.T) {
	doc := &models.MenuDocument{
		Layout: models.LayoutWeekly,
		Week: map[models.Weekday][]models.MenuItem{
			models.Monday: {{Name: "Brócolis", Category: "vegetal"}},
		},
	}
	conn := dialEvents(t, doc, "")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "change", "field": "tipo", "value": "vegetal"}))

	msg := readMessage(t, conn)
	assert.Equal(t, "1 resultado(s) encontrado(s)", msg.Status)
	assert.Equal(t, 4, strings.Count(msg.HTML, "Nenhum prato encontrado para este dia."))
}

func TestCardapioHttpServer_ServeAndShutdown(t *testing.T) {
	appRouter, router := newTestRouter(t, flatDocument())
	srv := NewCardapioHttpServer(appRouter, router, "127.0.0.1:0", time.Second)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
