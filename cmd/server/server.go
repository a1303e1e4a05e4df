// cmd/server/server.go
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kvesterberg/fixturedesk/internal/api"
	"github.com/kvesterberg/fixturedesk/internal/api/competitions"
	"github.com/kvesterberg/fixturedesk/internal/api/games"
	"github.com/kvesterberg/fixturedesk/internal/api/nav"
	"github.com/kvesterberg/fixturedesk/internal/api/notifications"
	"github.com/kvesterberg/fixturedesk/internal/api/schedule"
	"github.com/kvesterberg/fixturedesk/internal/api/seasons"
	"github.com/kvesterberg/fixturedesk/internal/api/teams"
	"github.com/kvesterberg/fixturedesk/internal/config"
	"github.com/kvesterberg/fixturedesk/internal/db"
	"github.com/kvesterberg/fixturedesk/internal/ratelimit"
)

func newServer(cfg *config.Config, database *db.DB) *http.Server {
	competitions.InitHandlers(database)
	seasons.InitHandlers(database)
	games.InitHandlers(database)
	teams.InitHandlers(database)
	nav.InitHandlers(database.Queries)
	schedule.InitHandlers(database.Queries)

	router := http.NewServeMux()
	registerRoutes(router)

	limiter := ratelimit.New(ratelimit.DefaultConfig())

	handler := api.ChainMiddleware(
		router,
		api.WithWriteRateLimit(limiter),
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	return &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/schedule", http.StatusFound)
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin pages
	mux.HandleFunc("GET /competitions", competitions.HandleCompetitionsPage)
	mux.HandleFunc("GET /competitions/{id}/seasons", seasons.HandleSeasonsPage)
	mux.HandleFunc("GET /competitions/{id}/seasons/{season_id}/games", games.HandleGamesPage)
	mux.HandleFunc("GET /teams", teams.HandleTeamsPage)

	// Public schedule
	mux.HandleFunc("GET /schedule", schedule.HandleSchedulePage)
	mux.HandleFunc("GET /v1/schedule/seasons", schedule.HandleScheduleSeasons)
	mux.HandleFunc("GET /v1/schedule/games", schedule.HandleScheduleGames)

	// Competitions
	mux.HandleFunc("GET /v1/competitions", competitions.HandleCompetitionsList)
	mux.HandleFunc("POST /v1/competitions", competitions.HandleCompetitionCreate)
	mux.HandleFunc("GET /v1/competitions/{id}", competitions.HandleCompetitionDetail)
	mux.HandleFunc("PUT /v1/competitions/{id}", competitions.HandleCompetitionUpdate)
	mux.HandleFunc("DELETE /v1/competitions/{id}", competitions.HandleCompetitionDelete)

	// Seasons
	mux.HandleFunc("GET /v1/competitions/{id}/seasons", seasons.HandleSeasonsList)
	mux.HandleFunc("POST /v1/competitions/{id}/seasons", seasons.HandleSeasonCreate)
	mux.HandleFunc("GET /v1/competitions/{id}/seasons/{season_id}", seasons.HandleSeasonDetail)
	mux.HandleFunc("PUT /v1/competitions/{id}/seasons/{season_id}", seasons.HandleSeasonUpdate)
	mux.HandleFunc("DELETE /v1/competitions/{id}/seasons/{season_id}", seasons.HandleSeasonDelete)
	mux.HandleFunc("POST /v1/competitions/{id}/seasons/{season_id}/stages/{stage_id}/move", seasons.HandleStageMove)

	// Games
	mux.HandleFunc("GET /v1/competitions/{id}/seasons/{season_id}/games", games.HandleGamesList)
	mux.HandleFunc("POST /v1/competitions/{id}/seasons/{season_id}/games", games.HandleGameCreate)
	mux.HandleFunc("GET /v1/competitions/{id}/seasons/{season_id}/games/{game_id}", games.HandleGameDetail)
	mux.HandleFunc("PUT /v1/competitions/{id}/seasons/{season_id}/games/{game_id}", games.HandleGameUpdate)
	mux.HandleFunc("DELETE /v1/competitions/{id}/seasons/{season_id}/games/{game_id}", games.HandleGameDelete)

	// Teams
	mux.HandleFunc("GET /v1/teams", teams.HandleTeamsList)
	mux.HandleFunc("POST /v1/teams", teams.HandleTeamCreate)
	mux.HandleFunc("GET /v1/teams/{id}", teams.HandleTeamDetail)
	mux.HandleFunc("PUT /v1/teams/{id}", teams.HandleTeamUpdate)
	mux.HandleFunc("DELETE /v1/teams/{id}", teams.HandleTeamDelete)

	// Navigation and notifications
	mux.HandleFunc("GET /v1/nav/search", nav.HandleSearch)
	mux.HandleFunc("GET /v1/confirm", notifications.HandleConfirm)
	mux.HandleFunc("GET /v1/notifications/close", notifications.HandleNotificationsClose)

	// Static assets
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "build/bin/static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
