package tetris

import (
	"time"

	"github.com/google/uuid"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/generator"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/tetris"
)

// GameState は1人用のライン消去ゲームの進行状態です。
// 描画や入力処理は持たず、呼び出し側から経過時間と操作を受け取って状態を進めます。
type GameState struct {
	GameID       string        `json:"game_id"`       // ゲームごとのID (UUID)。リスタートで振り直す
	Board        *tetris.Board `json:"board"`         // 現在のゲームボード
	CurrentPiece *tetris.Piece `json:"current_piece"` // 現在操作中のテトリミノ
	NextPiece    *tetris.Piece `json:"next_piece"`    // 次に出現するテトリミノ
	IsGameOver   bool          `json:"is_game_over"`  // ゲームオーバー状態かどうか
	SoftDrop     bool          `json:"soft_drop"`     // 下キー押下中かどうか
	PiecesLocked int           `json:"pieces_locked"` // 固定したピースの数
	StartedAt    time.Time     `json:"started_at"`

	generator   *generator.Generator `json:"-"` // ピース生成用の乱数源 - JSONシリアライズから除外
	fallElapsed time.Duration        `json:"-"` // 前回の落下からの経過時間 - JSONシリアライズから除外
}

// NewGameState は新しいゲーム状態を初期化して返します。
//
// Parameters:
//   cfg : レベル設定（LinesPerLevel はクランプ済みであること）
//   gen : ピース生成器
// Returns:
//   *GameState: 最初のピースが出現済みのゲーム状態
func NewGameState(cfg level.Config, gen *generator.Generator) *GameState {
	state := &GameState{
		Board:     tetris.NewBoard(grid.DefaultWidth, grid.DefaultHeight, cfg),
		generator: gen,
	}
	state.Restart()
	return state
}

// Restart はボードとピースを初期状態に戻し、新しいゲームを開始します。
func (s *GameState) Restart() {
	s.GameID = uuid.New().String()
	s.Board.Reset()
	s.CurrentPiece = nil
	s.NextPiece = s.generator.NextPiece()
	s.IsGameOver = false
	s.SoftDrop = false
	s.PiecesLocked = 0
	s.fallElapsed = 0
	s.StartedAt = time.Now()
	s.SpawnNewPiece()
}

// SpawnNewPiece は次のピースを現在のピースにし、新しい次のピースを引きます。
// 出現位置に置けない場合はゲームオーバーになります。
func (s *GameState) SpawnNewPiece() {
	s.CurrentPiece = s.NextPiece
	s.NextPiece = s.generator.NextPiece()

	if !s.Board.IsValidMove(s.CurrentPiece) {
		s.IsGameOver = true
	}
}

// FallInterval は現在の1マス落下間隔を返します。
// ソフトドロップ中はレベルに関係なく固定の間隔になります。
func (s *GameState) FallInterval() time.Duration {
	cfg := s.Board.LevelConfig()
	if s.SoftDrop {
		return cfg.SoftDrop
	}
	if !cfg.Enabled {
		return cfg.BaseInterval
	}
	return cfg.FallInterval(s.Board.Level)
}

// LinesCleared は累計クリアライン数を返します。
func (s *GameState) LinesCleared() int {
	return s.Board.LinesCleared
}

// Level は現在のレベルを返します。
func (s *GameState) Level() int {
	return s.Board.Level
}
