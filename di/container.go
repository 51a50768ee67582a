package di

import (
	"context"
	"fmt"
	"log"

	"cardapio-server/api/menusource"
	"cardapio-server/config"
	"cardapio-server/dao/storage"
	"cardapio-server/db"
	"cardapio-server/server"
	"cardapio-server/server/handlers"
	services "cardapio-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	KVClient              db.KVClient
	ProfileStorageDao     *storage.ProfileStorageDAO
	MenuSource            menusource.MenuSource
	MenuService           *services.MenuService
	CommentService        *services.CommentService
	ThemeService          *services.ThemeService
	AdminGate             *services.AdminGate
	SessionSweeperService *services.SessionSweeperService
	MenuHandler           *handlers.MenuHandler
	CommentHandler        *handlers.CommentHandler
	AdminHandler          *handlers.AdminHandler
	ThemeHandler          *handlers.ThemeHandler
	EventsHandler         *handlers.EventsHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	CardapioHttpServer    *server.CardapioHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, settings *config.Settings) (*Container, error) {
	log.Printf("initializing container - storage: %s, menu: %s", settings.Storage, settings.MenuSource)

	// Initialize KV client for visitor storage
	kvClient, err := newKVClient(ctx, settings)
	if err != nil {
		return nil, err
	}
	if err := kvClient.Ping(); err != nil {
		kvClient.Close()
		return nil, fmt.Errorf("failed to connect to %s storage: %w", settings.Storage, err)
	}

	profileStorageDao := storage.NewProfileStorageDAO(kvClient)

	// Initialize menu source and load the document once
	menuSource, err := menusource.New(settings.MenuSource)
	if err != nil {
		kvClient.Close()
		return nil, err
	}
	loc, err := settings.Location()
	if err != nil {
		kvClient.Close()
		return nil, err
	}
	menuService := services.NewMenuService(menuSource)
	menuService.SetLocation(loc)
	if err := menuService.Load(ctx); err != nil {
		log.Printf("Serving without a menu: %v", err)
	}

	// Initialize service layer
	commentService := services.NewCommentService(profileStorageDao)
	themeService := services.NewThemeService(profileStorageDao)
	adminGate := services.NewAdminGate(settings.AdminSecret)
	sessionSweeperService := services.NewSessionSweeperService(config.TAB_STATE_IDLE_TTL, adminGate, menuService)

	// Initialize handlers
	pageBuilder := handlers.NewPageBuilder(menuService, commentService, themeService, adminGate)
	menuHandler := handlers.NewMenuHandler(menuService, pageBuilder)
	commentHandler := handlers.NewCommentHandler(commentService, adminGate, pageBuilder)
	adminHandler := handlers.NewAdminHandler(adminGate, pageBuilder)
	themeHandler := handlers.NewThemeHandler(themeService)
	eventsHandler := handlers.NewEventsHandler(menuService, themeService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(menuHandler, commentHandler, adminHandler, themeHandler, eventsHandler, muxRouter)

	// initialize cardapio server
	cardapioHttpServer := server.NewCardapioHttpServer(router, muxRouter, settings.Addr, settings.ShutdownTimeout)

	return &Container{
		KVClient:              kvClient,
		ProfileStorageDao:     profileStorageDao,
		MenuSource:            menuSource,
		MenuService:           menuService,
		CommentService:        commentService,
		ThemeService:          themeService,
		AdminGate:             adminGate,
		SessionSweeperService: sessionSweeperService,
		MenuHandler:           menuHandler,
		CommentHandler:        commentHandler,
		AdminHandler:          adminHandler,
		ThemeHandler:          themeHandler,
		EventsHandler:         eventsHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		CardapioHttpServer:    cardapioHttpServer,
	}, nil
}

func newKVClient(ctx context.Context, settings *config.Settings) (db.KVClient, error) {
	switch settings.Storage {
	case config.STORAGE_REDIS:
		log.Printf("Using redis storage at %s", settings.RedisAddr)
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		return db.NewRedisKVClient(ctx, redisInternalClient), nil
	case config.STORAGE_SQLITE:
		log.Printf("Using sqlite storage at %s", settings.SQLitePath)
		client, err := db.OpenSQLiteKVClient(ctx, settings.SQLitePath)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		log.Printf("Using in-memory storage")
		return db.NewMemoryKVClient(ctx), nil
	}
}

// Close releases the storage backend.
func (c *Container) Close() error {
	c.SessionSweeperService.Stop()
	return c.KVClient.Close()
}
