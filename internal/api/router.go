package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/api/handlers"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/api/middleware"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/database"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
)

// Dependencies はルーターの組み立てに必要なものです。
type Dependencies struct {
	Version        string
	ResultRepo     database.ResultRepository
	SettingsStore  *settings.Store
	LevelConfig    level.Config
	JWTSecret      string
	BypassAuth     bool
	AllowedOrigins []string
}

// NewRouter は全エンドポイントを登録したハンドラーを返します。
func NewRouter(deps Dependencies) http.Handler {
	publicHandler := handlers.NewPublicHandler(deps.Version)
	gameHandler := handlers.NewGameHandler(deps.LevelConfig)
	resultHandler := handlers.NewResultHandler(deps.ResultRepo)
	settingsHandler := handlers.NewSettingsHandler(deps.SettingsStore)

	r := mux.NewRouter()

	// 認証不要な公開エンドポイント
	r.HandleFunc("/api/public/health", publicHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/modes", gameHandler.GetModes).Methods(http.MethodGet)
	r.HandleFunc("/api/level", gameHandler.GetLevel).Methods(http.MethodGet)
	r.HandleFunc("/api/results", resultHandler.GetTopResults).Methods(http.MethodGet)
	r.HandleFunc("/api/results/user/{userID}", resultHandler.GetUserResult).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", settingsHandler.GetSettings).Methods(http.MethodGet)

	// /api/protected/ で始まる全てのパスにAuthMiddlewareを適用します。
	protectedRouter := r.PathPrefix("/api/protected").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.BypassAuth))
	protectedRouter.HandleFunc("/results", resultHandler.PostResult).Methods(http.MethodPost)
	protectedRouter.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods(http.MethodPut)

	return middleware.CORSHandler(deps.AllowedOrigins)(r)
}
