package tetris

import (
	"log"
	"time"
)

// プレイヤーの操作。キー入力やAPIから受け取った文字列をそのまま渡します。
const (
	ActionMoveLeft      = "move_left"
	ActionMoveRight     = "move_right"
	ActionRotate        = "rotate"
	ActionSoftDropStart = "soft_drop_start"
	ActionSoftDropEnd   = "soft_drop_end"
)

// ApplyPlayerInput はプレイヤーの入力（アクション）に基づいてゲーム状態を更新します。
// 移動・回転はまず実際のピースに適用し、置けなければ元に戻します。
//
// Parameters:
//   state  : 更新するゲーム状態のポインタ
//   action : プレイヤーが実行したアクション（例: "move_left", "rotate"）
// Returns:
//   bool: ゲーム状態が実際に変更された場合はtrue、変更されなかった場合はfalse
func ApplyPlayerInput(state *GameState, action string) bool {
	if state.IsGameOver || state.CurrentPiece == nil {
		return false // ゲームオーバーまたはピースがない場合は操作を受け付けない
	}

	switch action {
	case ActionMoveLeft:
		return state.Board.TryMove(state.CurrentPiece, -1, 0)
	case ActionMoveRight:
		return state.Board.TryMove(state.CurrentPiece, 1, 0)
	case ActionRotate:
		// 壁蹴りはなし。置けなければ3回追加で回して元の向きに戻す
		return state.Board.TryRotate(state.CurrentPiece)
	case ActionSoftDropStart:
		if state.SoftDrop {
			return false
		}
		state.SoftDrop = true
		return true
	case ActionSoftDropEnd:
		if !state.SoftDrop {
			return false
		}
		state.SoftDrop = false
		return true
	}
	return false
}

// Tick は経過時間を落下タイマーに加算し、落下間隔に達していればピースを1マス落とします。
// 落とせなかった場合はピースを固定し、ラインクリアと次のピースの出現を行います。
//
// Parameters:
//   state   : 更新するゲーム状態のポインタ
//   elapsed : 前回の呼び出しからの経過時間
// Returns:
//   bool: ピースが固定された場合はtrue
func Tick(state *GameState, elapsed time.Duration) bool {
	if state.IsGameOver || state.CurrentPiece == nil {
		return false
	}

	state.fallElapsed += elapsed
	if state.fallElapsed < state.FallInterval() {
		return false
	}
	state.fallElapsed = 0

	if state.Board.TryMove(state.CurrentPiece, 0, 1) {
		return false
	}

	handlePieceLock(state)
	return true
}

// handlePieceLock はピースがボードに固定された後の処理をすべて行います。
// ラインクリア、レベル更新、次のピース生成、ゲームオーバー判定が含まれます。
func handlePieceLock(state *GameState) {
	cleared := state.Board.Lock(state.CurrentPiece)
	state.PiecesLocked++

	if cleared > 0 {
		log.Printf("[TetrisGame] %s: %d lines cleared (total %d, level %d)",
			state.GameID, cleared, state.Board.LinesCleared, state.Board.Level)
	}

	state.SpawnNewPiece()

	if state.IsGameOver {
		log.Printf("[TetrisGame] %s Game Over! Lines Cleared: %d, Level: %d",
			state.GameID, state.Board.LinesCleared, state.Board.Level)
	}
}
