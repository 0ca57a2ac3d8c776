package puyo

import (
	"time"

	"github.com/google/uuid"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/generator"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/puyo"
)

// GameState は1人用の連鎖消去ゲームの進行状態です。
type GameState struct {
	GameID      string            `json:"game_id"`
	Board       *puyo.Board       `json:"board"`
	CurrentPair *puyo.Pair        `json:"current_pair"` // 現在操作中の組ぷよ
	NextPair    *puyo.Pair        `json:"next_pair"`    // 次に出現する組ぷよ
	IsGameOver  bool              `json:"is_game_over"`
	SoftDrop    bool              `json:"soft_drop"`
	LastChain   *puyo.ChainReport `json:"last_chain"` // 直前の固定で発生した連鎖
	MaxChain    int               `json:"max_chain"`  // このゲームでの最大連鎖数
	StartedAt   time.Time         `json:"started_at"`

	levelConfig level.Config         `json:"-"`
	generator   *generator.Generator `json:"-"`
	fallElapsed time.Duration        `json:"-"`
}

// NewGameState は新しいゲーム状態を初期化して返します。
// ぷよぷよにはレベルがないため、cfg からは落下間隔のみを使います。
func NewGameState(cfg level.Config, gen *generator.Generator) *GameState {
	state := &GameState{
		Board:       puyo.NewBoard(grid.DefaultWidth, grid.DefaultHeight),
		levelConfig: cfg,
		generator:   gen,
	}
	state.Restart()
	return state
}

// Restart はボードを空にし、新しいゲームを開始します。
func (s *GameState) Restart() {
	s.GameID = uuid.New().String()
	s.Board.Reset()
	s.CurrentPair = nil
	s.NextPair = s.generator.NextPair()
	s.IsGameOver = false
	s.SoftDrop = false
	s.LastChain = nil
	s.MaxChain = 0
	s.fallElapsed = 0
	s.StartedAt = time.Now()
	s.SpawnNewPair()
}

// SpawnNewPair は次の組ぷよを出現させます。軸ぷよの位置が埋まっていればゲームオーバーです。
func (s *GameState) SpawnNewPair() {
	s.CurrentPair = s.NextPair
	s.NextPair = s.generator.NextPair()

	if !s.Board.IsValidMove(s.CurrentPair) {
		s.IsGameOver = true
	}
}

// FallInterval は現在の1マス落下間隔を返します。
func (s *GameState) FallInterval() time.Duration {
	if s.SoftDrop {
		return s.levelConfig.SoftDrop
	}
	return s.levelConfig.BaseInterval
}

// Score は累計スコアを返します。
func (s *GameState) Score() int {
	return s.Board.Score
}
