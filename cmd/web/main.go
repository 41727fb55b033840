package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cozycorner/internal/advisor"
	"cozycorner/internal/catalog"
	"cozycorner/internal/config"
	"cozycorner/internal/handlers"
	"cozycorner/internal/session"
)

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	cfg, err := config.Load(os.Getenv("COZY_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal(err)
	}

	designer := advisor.New(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
	if cfg.Assistant.APIKey == "" {
		log.Printf("[advisor] no API key set, CozyBot will ask for one")
	}

	sessions := session.NewStore(session.Options{
		CellSize:       cfg.Room.GridSize,
		Advisor:        designer,
		AdvisorTimeout: cfg.Assistant.Timeout(),
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Fatal(err)
	}

	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	authHandler := handlers.NewAuthHandler(sessions, cfg.Profile.StartingCurrency)
	roomHandler := handlers.NewRoomHandler(sessions, cfg.Room)
	shopHandler := handlers.NewShopHandler(sessions, cat)
	profileHandler := handlers.NewProfileHandler(sessions)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		authHandler.RegisterRoutes(r)
		roomHandler.RegisterRoutes(r)
		shopHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
	})
	roomHandler.RegisterStreamRoutes(r)

	addr := ":" + cfg.Server.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       120 * time.Second,
	}

	publicURL := cfg.Server.BaseURL
	if publicURL == "" {
		publicURL = "http://localhost" + addr
	}
	log.Printf("CozyCorner listening on %s (%d catalog items)", publicURL, cat.Len())
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

//go:embed static/*
var embeddedStatic embed.FS
