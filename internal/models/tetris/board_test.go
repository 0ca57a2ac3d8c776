package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
)

const (
	R = grid.ColorRed
	B = grid.ColorBlue
	G = grid.ColorGreen
	E = grid.ColorEmpty
)

func newTestBoard(rows [][]grid.Color) *Board {
	b := NewBoard(len(rows[0]), len(rows), level.DefaultConfig())
	for y, row := range rows {
		for x, c := range row {
			b.Grid().Set(x, y, c)
		}
	}
	return b
}

func fillRow(b *Board, y int, c grid.Color) {
	for x := 0; x < b.Grid().Width; x++ {
		b.Grid().Set(x, y, c)
	}
}

// TestClearLinesRowsTwoAndFive は離れた2行が1回の呼び出しで消えることを確認します。
func TestClearLinesRowsTwoAndFive(t *testing.T) {
	b := newTestBoard([][]grid.Color{
		{R, E, E, E}, // 0
		{E, B, E, E}, // 1
		{G, G, G, G}, // 2 full
		{E, E, R, E}, // 3
		{B, E, E, B}, // 4
		{R, R, R, R}, // 5 full
		{E, G, G, E}, // 6
		{G, E, E, E}, // 7
	})

	cleared := b.ClearLines()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, 2, b.LinesCleared)
	want := [][]grid.Color{
		{E, E, E, E},
		{E, E, E, E},
		{R, E, E, E},
		{E, B, E, E},
		{E, E, R, E},
		{B, E, E, B},
		{E, G, G, E},
		{G, E, E, E},
	}
	if diff := cmp.Diff(want, b.Grid().Snapshot()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestClearLinesAdjacentRows(t *testing.T) {
	testCases := []struct {
		name string
		full []int
	}{
		{"double", []int{18, 19}},
		{"tetris", []int{16, 17, 18, 19}},
		{"split triple", []int{10, 12, 13}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(grid.DefaultWidth, grid.DefaultHeight, level.DefaultConfig())
			for _, y := range tc.full {
				fillRow(b, y, B)
			}
			// 消えない目印
			b.Grid().Set(0, 5, R)

			cleared := b.ClearLines()

			assert.Equal(t, len(tc.full), cleared)
			assert.Equal(t, 1, b.Grid().Occupied())
			assert.Equal(t, R, b.Grid().At(0, 5+len(tc.full)))
			for y := 0; y < len(tc.full); y++ {
				for x := 0; x < grid.DefaultWidth; x++ {
					assert.True(t, b.Grid().IsEmpty(x, y))
				}
			}
		})
	}
}

func TestClearLinesNothingToClear(t *testing.T) {
	b := NewBoard(4, 4, level.DefaultConfig())
	b.Grid().Set(0, 3, R)

	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, 0, b.LinesCleared)
	assert.Equal(t, R, b.Grid().At(0, 3))
}

func TestClearLinesUpdatesLevel(t *testing.T) {
	cfg := level.DefaultConfig()
	cfg.LinesPerLevel = 2
	b := NewBoard(4, 6, cfg)

	for y := 2; y < 6; y++ {
		fillRow(b, y, G)
	}
	assert.Equal(t, 4, b.ClearLines())
	assert.Equal(t, 2, b.Level)

	b.Reset()
	assert.Equal(t, 0, b.Level)
	assert.Equal(t, 0, b.LinesCleared)
	assert.Equal(t, 0, b.Grid().Occupied())
}

func TestClearLinesLevelDisabled(t *testing.T) {
	cfg := level.DefaultConfig()
	cfg.Enabled = false
	b := NewBoard(4, 4, cfg)
	fillRow(b, 3, R)

	b.ClearLines()
	assert.Equal(t, 1, b.LinesCleared)
	assert.Equal(t, 0, b.Level)
}

// TestIsValidMove は壁・床・既存ブロックとの衝突を判定します。
func TestIsValidMove(t *testing.T) {
	b := NewBoard(grid.DefaultWidth, grid.DefaultHeight, level.DefaultConfig())
	b.Grid().Set(5, 10, R)

	p := NewPiece(TypeO) // 2x2
	testCases := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn", SpawnX, SpawnY, true},
		{"left edge", 0, 0, true},
		{"past left wall", -1, 0, false},
		{"right edge", grid.DefaultWidth - 2, 0, true},
		{"past right wall", grid.DefaultWidth - 1, 0, false},
		{"on floor", 0, grid.DefaultHeight - 2, true},
		{"through floor", 0, grid.DefaultHeight - 1, false},
		{"overlap", 4, 9, false},
		{"next to block", 3, 9, true},
		{"above grid", 0, -2, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p.X, p.Y = tc.x, tc.y
			assert.Equal(t, tc.want, b.IsValidMove(p))
		})
	}
}

func TestMergePiece(t *testing.T) {
	b := NewBoard(grid.DefaultWidth, grid.DefaultHeight, level.DefaultConfig())
	p := NewPiece(TypeT)
	p.Y = grid.DefaultHeight - 2

	b.MergePiece(p)

	assert.Equal(t, 4, b.Grid().Occupied())
	for _, pos := range p.Positions() {
		assert.Equal(t, grid.ColorPurple, b.Grid().At(pos.X, pos.Y))
	}
	assert.False(t, b.IsValidMove(p), "merged cells must now be occupied")
}

func TestLockClearsCompletedRow(t *testing.T) {
	b := NewBoard(4, 4, level.DefaultConfig())
	// 最下段を I-ミノ 1本で埋める
	b.Grid().Set(0, 2, R)
	p := NewPiece(TypeI)
	p.X, p.Y = 0, 2 // I-ミノの2行目が最下段に来る

	require.True(t, b.IsValidMove(p))
	assert.Equal(t, 1, b.Lock(p))
	assert.Equal(t, R, b.Grid().At(0, 3))
	assert.Equal(t, 1, b.Grid().Occupied())
}

func TestTryMoveRevertsOnCollision(t *testing.T) {
	b := NewBoard(grid.DefaultWidth, grid.DefaultHeight, level.DefaultConfig())
	p := NewPiece(TypeO)
	p.X = 0

	assert.False(t, b.TryMove(p, -1, 0))
	assert.Equal(t, 0, p.X)

	assert.True(t, b.TryMove(p, 1, 0))
	assert.Equal(t, 1, p.X)

	p.Y = grid.DefaultHeight - 2
	assert.False(t, b.TryMove(p, 0, 1))
	assert.Equal(t, grid.DefaultHeight-2, p.Y)
}

func TestTryRotateRevertsWithThreeRotations(t *testing.T) {
	b := NewBoard(grid.DefaultWidth, grid.DefaultHeight, level.DefaultConfig())
	p := NewPiece(TypeI)
	p.Y = grid.DefaultHeight - 2 // 横向き、下に2行分の余裕しかない
	before := p.Clone().Shape

	assert.False(t, b.TryRotate(p), "vertical I does not fit above the floor")
	assert.Equal(t, before, p.Shape)

	p.Y = 0
	assert.True(t, b.TryRotate(p))
	assert.NotEqual(t, before, p.Shape)
}
