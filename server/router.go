package server

import (
	"cardapio-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	menuHandler    *handlers.MenuHandler
	commentHandler *handlers.CommentHandler
	adminHandler   *handlers.AdminHandler
	themeHandler   *handlers.ThemeHandler
	eventsHandler  *handlers.EventsHandler
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	menuHandler *handlers.MenuHandler,
	commentHandler *handlers.CommentHandler,
	adminHandler *handlers.AdminHandler,
	themeHandler *handlers.ThemeHandler,
	eventsHandler *handlers.EventsHandler,
	router *mux.Router) *Router {
	return &Router{
		menuHandler:    menuHandler,
		commentHandler: commentHandler,
		adminHandler:   adminHandler,
		themeHandler:   themeHandler,
		eventsHandler:  eventsHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(handlers.ProfileMiddleware)

	// expects ?busca={text}&calorias={int}&tipo={category}&ordenar={nome|calorias}&tab={uuid}
	r.router.HandleFunc("/", r.menuHandler.GetPage).Methods("GET")
	r.router.HandleFunc("/v1/menu", r.menuHandler.GetMenu).Methods("GET")
	r.router.HandleFunc("/v1/menu/document", r.menuHandler.GetMenuDocument).Methods("GET")
	r.router.HandleFunc("/v1/menu/chart", r.menuHandler.GetMenuChart).Methods("GET")
	r.router.HandleFunc("/v1/menu/dish-of-the-day", r.menuHandler.PostDishOfDay).Methods("POST")

	r.router.HandleFunc("/v1/theme/toggle", r.themeHandler.Toggle).Methods("POST")

	r.router.HandleFunc("/v1/comments", r.commentHandler.PostComment).Methods("POST")
	r.router.HandleFunc("/v1/comments/{index:[0-9]+}/delete", r.commentHandler.DeleteComment).Methods("POST")

	r.router.HandleFunc("/v1/admin/login", r.adminHandler.Login).Methods("POST")
	r.router.HandleFunc("/v1/admin/logout", r.adminHandler.Logout).Methods("POST")

	r.router.HandleFunc("/ws/events", r.eventsHandler.HandleEvents).Methods("GET")

	r.router.HandleFunc("/ping", r.menuHandler.Ping).Methods("GET")
}
