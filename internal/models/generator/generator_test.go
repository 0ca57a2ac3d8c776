package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/puyo"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/tetris"
)

// TestSameSeedSameSequence は同じシードから同じ順序でピースが出ることを確認します。
func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextPieceType(), b.NextPieceType())
		pa, pb := a.NextPair(), b.NextPair()
		assert.Equal(t, pa.Main.Color, pb.Main.Color)
		assert.Equal(t, pa.Sub.Color, pb.Sub.Color)
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	g := New(0)
	assert.NotZero(t, g.Seed)
}

// TestAllPieceTypesAppear は十分な回数引けば7種類全てが出現することを確認します。
func TestAllPieceTypesAppear(t *testing.T) {
	g := New(7)
	seen := make(map[tetris.PieceType]int)
	for i := 0; i < 700; i++ {
		seen[g.NextPieceType()]++
	}
	assert.Len(t, seen, len(tetris.PieceTypes))
	for pt, n := range seen {
		assert.Greater(t, n, 50, "piece %s is badly under-represented", pt)
	}
}

func TestNextPieceAtSpawn(t *testing.T) {
	p := New(1).NextPiece()
	assert.Equal(t, tetris.SpawnX, p.X)
	assert.Equal(t, tetris.SpawnY, p.Y)
}

func TestPairColorsFromPalette(t *testing.T) {
	g := New(3)
	palette := make(map[grid.Color]bool)
	for _, c := range puyo.Colors {
		palette[c] = true
	}

	sameColor := 0
	for i := 0; i < 500; i++ {
		p := g.NextPair()
		assert.True(t, palette[p.Main.Color])
		assert.True(t, palette[p.Sub.Color])
		assert.Equal(t, puyo.SpawnX, p.Main.X)
		assert.Equal(t, -1, p.Sub.Y)
		if p.Main.Color == p.Sub.Color {
			sameColor++
		}
	}
	// 色は独立に選ばれるので、同色の組もそれなりに出る（期待値は1/5）
	assert.Greater(t, sameColor, 0)
	assert.Less(t, sameColor, 250)
}
