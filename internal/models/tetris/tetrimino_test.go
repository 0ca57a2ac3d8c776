package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
)

// TestRotateFourTimesIsIdentity は全7種類のピースが4回の回転で元の形に戻ることを確認します。
func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			p := NewPiece(pt)
			original := p.Clone().Shape

			for i := 0; i < 4; i++ {
				p.Rotate()
			}
			if diff := cmp.Diff(original, p.Shape); diff != "" {
				t.Errorf("shape mismatch after 4 rotations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	p := NewPiece(TypeT)
	p.Rotate()

	want := [][]int{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}
	if diff := cmp.Diff(want, p.Shape); diff != "" {
		t.Errorf("T rotated once (-want +got):\n%s", diff)
	}

	p = NewPiece(TypeI)
	p.Rotate()
	assert.ElementsMatch(t, []grid.Point{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}}, p.Positions())
}

func TestRotateKeepsPosition(t *testing.T) {
	p := NewPiece(TypeL)
	p.X, p.Y = 2, 7
	p.Rotate()

	assert.Equal(t, 2, p.X)
	assert.Equal(t, 7, p.Y)
}

func TestThreeRotationsEqualCounterClockwise(t *testing.T) {
	for _, pt := range PieceTypes {
		p := NewPiece(pt)
		p.Rotate()
		for i := 0; i < 3; i++ {
			p.Rotate()
		}
		assert.Equal(t, NewPiece(pt).Shape, p.Shape, "piece %s", pt)
	}
}

func TestNewPieceSpawnAndColor(t *testing.T) {
	wantColors := map[PieceType]grid.Color{
		TypeI: grid.ColorCyan,
		TypeO: grid.ColorYellow,
		TypeT: grid.ColorPurple,
		TypeS: grid.ColorGreen,
		TypeZ: grid.ColorRed,
		TypeJ: grid.ColorBlue,
		TypeL: grid.ColorOrange,
	}
	for _, pt := range PieceTypes {
		p := NewPiece(pt)
		assert.Equal(t, SpawnX, p.X)
		assert.Equal(t, SpawnY, p.Y)
		assert.Equal(t, wantColors[pt], p.Color)
		assert.Len(t, p.Positions(), 4, "piece %s", pt)
		for _, pos := range p.Positions() {
			assert.GreaterOrEqual(t, pos.Y, 0, "spawned cells must be inside the grid")
		}
	}
}

func TestNewPieceDoesNotShareShape(t *testing.T) {
	a := NewPiece(TypeS)
	a.Rotate()
	b := NewPiece(TypeS)

	assert.NotEqual(t, a.Shape, b.Shape)
	assert.Equal(t, pieceDefs[TypeS].shape, b.Shape)
}

func TestPreviewPositions(t *testing.T) {
	p := NewPiece(TypeO)
	assert.ElementsMatch(t,
		[]grid.Point{{X: 14, Y: 2}, {X: 15, Y: 2}, {X: 14, Y: 3}, {X: 15, Y: 3}},
		p.PreviewPositions(14, 2))
}

func TestStringToPieceType(t *testing.T) {
	for _, pt := range PieceTypes {
		got, ok := StringToPieceType(pt.String())
		assert.True(t, ok)
		assert.Equal(t, pt, got)
	}
	_, ok := StringToPieceType("X")
	assert.False(t, ok)
}
