package main

import (
	"context"
	"log"
	"net/http"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/api"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/config"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/database"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	dbService, err := database.NewDatabaseService(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("データベースの初期化に失敗しました: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

	store := settings.NewStore(cfg.SettingsPath)
	userSettings := store.Load()

	router := api.NewRouter(api.Dependencies{
		Version:        version,
		ResultRepo:     database.NewResultRepository(dbService.DB),
		SettingsStore:  store,
		LevelConfig:    cfg.LevelConfig(userSettings.LinesPerLevel),
		JWTSecret:      cfg.JWTSecret,
		BypassAuth:     cfg.BypassAuth,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	log.Printf("[API] Server starting on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
