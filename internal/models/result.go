package models

import (
	"time"
)

// GameMode はどちらのゲームの結果かを表します。
type GameMode string

const (
	ModeTetris GameMode = "tetris" // ライン消去
	ModePuyo   GameMode = "puyo"   // 連鎖消去
)

// Valid は既知のゲームモードかどうかを返します。
func (m GameMode) Valid() bool {
	return m == ModeTetris || m == ModePuyo
}

// Result はgame_resultsテーブルのレコードに対応する構造体です。
// 終了したゲームの結果のみを保存し、途中のゲーム状態は保存しません。
type Result struct {
	ID           string    `json:"id"`      // UUID
	UserID       string    `json:"user_id"` // UUID
	Mode         GameMode  `json:"mode"`
	Score        int       `json:"score"` // tetrisでは消したライン数、puyoでは連鎖スコア
	LinesCleared int       `json:"lines_cleared"`
	MaxChain     int       `json:"max_chain"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResultResponse はAPI レスポンス用の構造体です。
type ResultResponse struct {
	Result
	Rank int `json:"rank"` // モード内のランキング順位
}

// ResultRequest はリザルト保存リクエスト用の構造体です。
// ユーザーIDは認証済みのコンテキストから取るため、ボディには含めません。
type ResultRequest struct {
	Mode         GameMode `json:"mode"`
	Score        int      `json:"score"`
	LinesCleared int      `json:"lines_cleared"`
	MaxChain     int      `json:"max_chain"`
}
