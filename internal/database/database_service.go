package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQLドライバー
)

// DatabaseService はデータベース接続を保持します。
type DatabaseService struct {
	DB *sql.DB
}

// schema はゲーム結果テーブルの定義です。
const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	id            UUID PRIMARY KEY,
	user_id       TEXT        NOT NULL,
	mode          TEXT        NOT NULL,
	score         INTEGER     NOT NULL,
	lines_cleared INTEGER     NOT NULL DEFAULT 0,
	max_chain     INTEGER     NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS game_results_mode_score_idx ON game_results (mode, score DESC, created_at ASC);
`

// NewDatabaseService はPostgreSQLに接続し、Pingで疎通を確認します。
func NewDatabaseService(databaseURL string) (*DatabaseService, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL が設定されていません")
	}
	log.Printf("[Database] データベース接続を試行中: URLの最初の50文字: %s...", databaseURL[:min(len(databaseURL), 50)])

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Printf("[Database] Error: sql.Openに失敗しました: %v", err)
		return nil, fmt.Errorf("データベースへの接続オブジェクト作成に失敗しました: %w", err)
	}

	if err := db.Ping(); err != nil {
		log.Printf("[Database] Error: db.Pingに失敗しました: %v", err)
		db.Close()
		return nil, fmt.Errorf("データベースのPingに失敗しました。接続情報やネットワークを確認してください: %w", err)
	}

	log.Println("[Database] データベースに正常に接続しました。")
	return &DatabaseService{DB: db}, nil
}

// EnsureSchema はゲーム結果テーブルがなければ作成します。
func (s *DatabaseService) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("スキーマの作成に失敗しました: %w", err)
	}
	return nil
}

// Close はデータベース接続を閉じます。
func (s *DatabaseService) Close() error {
	return s.DB.Close()
}
