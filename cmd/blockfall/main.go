package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/audio"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/config"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/generator"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 画面を壊さないようにログはファイルへ出す
	logPath := filepath.Join(os.TempDir(), "blockfall.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("ログファイルを開けませんでした: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	store := settings.NewStore(cfg.SettingsPath)
	userSettings := store.Load()

	sound := audio.NewSoundManager(cfg.AudioEnabled, userSettings.Volume)
	if err := sound.Initialize(); err != nil {
		// 音が出なくてもゲームは続けられる
		log.Printf("[Audio] Audio initialization failed: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("スクリーンの作成に失敗しました: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("スクリーンの初期化に失敗しました: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := ui.NewApp(screen, ui.Options{
		Store:       store,
		Sound:       sound,
		Generator:   generator.New(cfg.GameSeed),
		LevelConfig: cfg.LevelConfig,
	})
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[UI] %v", err)
	}
}
