package puyo

import (
	"github.com/kamstrup/intmap"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
)

const (
	MinGroupSize = 4  // これ以上つながると消える
	ScoreUnit    = 10 // 1個あたりの基本点
)

// Group は同じ色で上下左右につながったぷよの集まりです。
type Group struct {
	Color grid.Color   `json:"color"`
	Cells []grid.Point `json:"cells"`
}

// ClearResult は1回の消去判定パスの結果です。
type ClearResult struct {
	Chain  int     `json:"chain"`  // このパスの連鎖段数（0始まり）
	Groups []Group `json:"groups"` // 消えたグループ
	Points int     `json:"points"` // このパスで加算された点数
}

// Cleared はこのパスで1つ以上のグループが消えたかどうかを返します。
func (r ClearResult) Cleared() bool {
	return len(r.Groups) > 0
}

// ChainReport は ResolveChain で連鎖が止まるまで処理した結果です。
type ChainReport struct {
	Steps  []ClearResult `json:"steps"`
	Points int           `json:"points"`
}

// Chains は発生した連鎖数を返します。
func (r ChainReport) Chains() int {
	return len(r.Steps)
}

// Board はぷよぷよのゲームボードです。
// グリッドと、累計スコア・連鎖カウンターを管理します。
type Board struct {
	grid       *grid.Grid
	Score      int `json:"score"`
	ChainCount int `json:"chain_count"`
}

// NewBoard は新しい空のボードを返します。
func NewBoard(width, height int) *Board {
	return &Board{grid: grid.New(width, height)}
}

// Grid は描画用にボードのグリッドを返します。
func (b *Board) Grid() *grid.Grid {
	return b.grid
}

// IsValidMove は組ぷよが現在の位置に存在できるかどうかを判定します。
// 子ぷよが見えない領域（y < 0）にある場合は有効として扱います。
func (b *Board) IsValidMove(p *Pair) bool {
	return b.grid.IsValidPlacement(p.Positions())
}

// MergePair は組ぷよをボードに固定します。見えない領域のぷよは書き込みません。
func (b *Board) MergePair(p *Pair) {
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			b.grid.Set(c.X, c.Y, c.Color)
		}
	}
}

// TryMove は組ぷよを (dx, dy) だけ動かし、置けなければ逆方向に戻します。
func (b *Board) TryMove(p *Pair, dx, dy int) bool {
	p.Move(dx, dy)
	if b.IsValidMove(p) {
		return true
	}
	p.Move(-dx, -dy)
	return false
}

// TryRotate は組ぷよを回転させ、置けなければ逆回転を1回かけて戻します。
func (b *Board) TryRotate(p *Pair, clockwise bool) bool {
	if clockwise {
		p.RotateClockwise()
	} else {
		p.RotateCounterClockwise()
	}
	if b.IsValidMove(p) {
		return true
	}
	if clockwise {
		p.RotateCounterClockwise()
	} else {
		p.RotateClockwise()
	}
	return false
}

// ApplyGravity は重力処理を1パスだけ行います。
// 各列を下から上へ調べ、下が空いているぷよを1マス落とします。
//
// Returns:
//   int: このパスで動いたぷよの数
func (b *Board) ApplyGravity() int {
	moved := 0
	g := b.grid
	for x := 0; x < g.Width; x++ {
		for y := g.Height - 2; y >= 0; y-- {
			if g.Cells[y][x] != grid.ColorEmpty && g.Cells[y+1][x] == grid.ColorEmpty {
				g.Cells[y+1][x] = g.Cells[y][x]
				g.Cells[y][x] = grid.ColorEmpty
				moved++
			}
		}
	}
	return moved
}

// Settle は動くぷよがなくなるまで重力処理を繰り返します。
//
// Returns:
//   int: 全パス合計の移動数
func (b *Board) Settle() int {
	total := 0
	for {
		moved := b.ApplyGravity()
		if moved == 0 {
			return total
		}
		total += moved
	}
}

// FindConnected は (x, y) から上下左右につながる同色のぷよを探します。
// visited は同じ判定パス内で共有し、既に調べたマスは二重に数えません。
// 再帰ではなく明示的なスタックで探索します。
func (b *Board) FindConnected(x, y int, visited *intmap.Map[int, struct{}]) []grid.Point {
	g := b.grid
	color := g.At(x, y)
	if color == grid.ColorEmpty {
		return nil
	}
	if _, seen := visited.Get(b.index(x, y)); seen {
		return nil
	}

	visited.Put(b.index(x, y), struct{}{})
	stack := []grid.Point{{X: x, Y: y}}
	var connected []grid.Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		connected = append(connected, p)

		for _, d := range neighbours {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.InBounds(nx, ny) || g.Cells[ny][nx] != color {
				continue
			}
			idx := b.index(nx, ny)
			if _, seen := visited.Get(idx); seen {
				continue
			}
			visited.Put(idx, struct{}{})
			stack = append(stack, grid.Point{X: nx, Y: ny})
		}
	}
	return connected
}

var neighbours = [4]grid.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

func (b *Board) index(x, y int) int {
	return y*b.grid.Width + x
}

// ClearGroups は4つ以上つながったグループを消去し、スコアを加算します。
// 1つでも消えた場合は連鎖カウンターを1増やし、何も消えなければ0に戻します。
// 得点は グループの大きさ × 10 × (連鎖段数 + 1) です。
func (b *Board) ClearGroups() ClearResult {
	g := b.grid
	visited := intmap.New[int, struct{}](g.Width * g.Height)
	result := ClearResult{Chain: b.ChainCount}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == grid.ColorEmpty {
				continue
			}
			color := g.Cells[y][x]
			group := b.FindConnected(x, y, visited)
			if len(group) < MinGroupSize {
				continue
			}
			for _, p := range group {
				g.Cells[p.Y][p.X] = grid.ColorEmpty
			}
			points := len(group) * ScoreUnit * (b.ChainCount + 1)
			b.Score += points
			result.Points += points
			result.Groups = append(result.Groups, Group{Color: color, Cells: group})
		}
	}

	if result.Cleared() {
		b.ChainCount++
	} else {
		b.ChainCount = 0
	}
	return result
}

// ResolveChain は固定直後に呼び出し、重力→消去→重力…を何も消えなくなるまで繰り返します。
// 各消去パスは必ず4個以上のぷよを減らすため、有限回で終了します。
func (b *Board) ResolveChain() ChainReport {
	var report ChainReport
	b.Settle()
	for {
		res := b.ClearGroups()
		if !res.Cleared() {
			return report
		}
		report.Steps = append(report.Steps, res)
		report.Points += res.Points
		b.Settle()
	}
}

// Lock は組ぷよを固定し、連鎖が止まるまで処理します。
func (b *Board) Lock(p *Pair) ChainReport {
	b.MergePair(p)
	return b.ResolveChain()
}

// Reset はグリッドとスコア・連鎖カウンターを初期状態に戻します。
func (b *Board) Reset() {
	b.grid.Reset()
	b.Score = 0
	b.ChainCount = 0
}
