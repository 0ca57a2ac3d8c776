package main

import (
	"context"
	"fmt"
	"log"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/config"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/database"
)

// データベースへの疎通確認と、ゲーム結果テーブルの作成を行います。
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("エラー: 設定の読み込みに失敗しました: %v", err)
	}

	svc, err := database.NewDatabaseService(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("エラー: %v", err)
	}
	defer svc.Close()

	fmt.Println("成功: データベースに正常に接続し、Pingが成功しました！")

	var version string
	if err := svc.DB.QueryRow("SELECT version()").Scan(&version); err != nil {
		log.Printf("警告: SELECT version() クエリの実行に失敗しました: %v", err)
	} else {
		fmt.Printf("データベースバージョン: %s\n", version)
	}

	if err := svc.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("エラー: %v", err)
	}
	fmt.Println("成功: game_results テーブルを確認しました。")
}
