package puyo

import (
	"log"
	"time"
)

const (
	ActionMoveLeft      = "move_left"
	ActionMoveRight     = "move_right"
	ActionRotate        = "rotate"      // 時計回り
	ActionRotateLeft    = "rotate_left" // 反時計回り
	ActionSoftDropStart = "soft_drop_start"
	ActionSoftDropEnd   = "soft_drop_end"
)

// ApplyPlayerInput はプレイヤーの入力に基づいて組ぷよを操作します。
//
// Returns:
//   bool: ゲーム状態が実際に変更された場合はtrue
func ApplyPlayerInput(state *GameState, action string) bool {
	if state.IsGameOver || state.CurrentPair == nil {
		return false
	}

	switch action {
	case ActionMoveLeft:
		return state.Board.TryMove(state.CurrentPair, -1, 0)
	case ActionMoveRight:
		return state.Board.TryMove(state.CurrentPair, 1, 0)
	case ActionRotate:
		return state.Board.TryRotate(state.CurrentPair, true)
	case ActionRotateLeft:
		return state.Board.TryRotate(state.CurrentPair, false)
	case ActionSoftDropStart:
		changed := !state.SoftDrop
		state.SoftDrop = true
		return changed
	case ActionSoftDropEnd:
		changed := state.SoftDrop
		state.SoftDrop = false
		return changed
	}
	return false
}

// Tick は落下タイマーを進め、間隔に達していれば組ぷよを1マス落とします。
// 着地した場合は固定して連鎖が止まるまで処理し、次の組ぷよを出現させます。
//
// Returns:
//   bool: 組ぷよが固定された場合はtrue
func Tick(state *GameState, elapsed time.Duration) bool {
	if state.IsGameOver || state.CurrentPair == nil {
		return false
	}

	state.fallElapsed += elapsed
	if state.fallElapsed < state.FallInterval() {
		return false
	}
	state.fallElapsed = 0

	if state.Board.TryMove(state.CurrentPair, 0, 1) {
		return false
	}

	handlePairLock(state)
	return true
}

func handlePairLock(state *GameState) {
	report := state.Board.Lock(state.CurrentPair)
	state.LastChain = &report

	if report.Chains() > 0 {
		if report.Chains() > state.MaxChain {
			state.MaxChain = report.Chains()
		}
		log.Printf("[PuyoGame] %s: %d chain, +%d (score %d)",
			state.GameID, report.Chains(), report.Points, state.Board.Score)
	}

	state.SpawnNewPair()

	if state.IsGameOver {
		log.Printf("[PuyoGame] %s Game Over! Final Score: %d, Max Chain: %d",
			state.GameID, state.Board.Score, state.MaxChain)
	}
}
