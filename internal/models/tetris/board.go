package tetris

import (
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
)

// Board はライン消去ゲームのボードです。
// グリッドと、累計クリアライン数・レベルを管理します。
type Board struct {
	grid         *grid.Grid
	levelConfig  level.Config
	LinesCleared int `json:"lines_cleared"` // 消した行数の累計
	Level        int `json:"level"`         // 累計ライン数から求めたレベル（レベル機能が無効なら常に0）
}

// NewBoard は新しい空のボードを初期化して返します。
//
// Parameters:
//   width, height : ボードのサイズ
//   cfg           : レベル設定（LinesPerLevel は検証済みであること）
func NewBoard(width, height int, cfg level.Config) *Board {
	return &Board{
		grid:        grid.New(width, height),
		levelConfig: cfg,
	}
}

// Grid は描画用にボードのグリッドを返します。
func (b *Board) Grid() *grid.Grid {
	return b.grid
}

// LevelConfig はこのボードが使っているレベル設定を返します。
func (b *Board) LevelConfig() level.Config {
	return b.levelConfig
}

// IsValidMove はピースが現在の位置に存在できるかどうかを判定します。
// 出現直後のピースに対してfalseが返った場合はゲームオーバーです。
func (b *Board) IsValidMove(p *Piece) bool {
	return b.grid.IsValidPlacement(p.Positions())
}

// MergePiece は落下したピースをボードに固定します。
func (b *Board) MergePiece(p *Piece) {
	for _, pos := range p.Positions() {
		// 出現位置の都合上、通常は全てのブロックが範囲内にある
		b.grid.Set(pos.X, pos.Y, p.Color)
	}
}

// ClearLines は揃ったラインをクリアし、上のブロックを落とします。
// 下の行から順に調べ、揃った行を消したときは同じ行をもう一度調べます
// （上の行が滑り落ちてきているため）。
//
// Returns:
//   int: この呼び出しでクリアされたライン数
func (b *Board) ClearLines() int {
	cleared := 0
	y := b.grid.Height - 1
	for y >= 0 {
		if b.grid.IsRowFull(y) {
			b.grid.RemoveRow(y)
			cleared++
		} else {
			y--
		}
	}
	b.LinesCleared += cleared
	b.Level = b.levelConfig.ForLines(b.LinesCleared)
	return cleared
}

// Lock はピースを固定し、すぐにラインクリアを行います。
//
// Returns:
//   int: クリアされたライン数
func (b *Board) Lock(p *Piece) int {
	b.MergePiece(p)
	return b.ClearLines()
}

// TryMove はピースを (dx, dy) だけ動かし、置けなければ元に戻します。
func (b *Board) TryMove(p *Piece, dx, dy int) bool {
	p.X += dx
	p.Y += dy
	if b.IsValidMove(p) {
		return true
	}
	p.X -= dx
	p.Y -= dy
	return false
}

// TryRotate はピースを時計回りに回転させ、置けなければさらに3回回転させて元の向きに戻します。
// 壁蹴りは行いません。
func (b *Board) TryRotate(p *Piece) bool {
	p.Rotate()
	if b.IsValidMove(p) {
		return true
	}
	for i := 0; i < 3; i++ {
		p.Rotate()
	}
	return false
}

// Reset はグリッドとカウンターを初期状態に戻します。
func (b *Board) Reset() {
	b.grid.Reset()
	b.LinesCleared = 0
	b.Level = 0
}
