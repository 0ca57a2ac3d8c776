package generator

import (
	"math/rand"
	"time"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/puyo"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/tetris"
)

// Generator は次に出現するテトリミノ・組ぷよを決める乱数源です。
// テトリミノは7種類から、ぷよの色は5色から、それぞれ独立に一様に選ばれます。
type Generator struct {
	Seed int64
	rnd  *rand.Rand
}

// New は指定したシードで Generator を生成します。
// seed が0の場合は現在時刻をシードにします。
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NextPieceType は7種類の中から次のピースタイプを選びます。
func (g *Generator) NextPieceType() tetris.PieceType {
	return tetris.PieceTypes[g.rnd.Intn(len(tetris.PieceTypes))]
}

// NextPiece は出現位置に配置された新しいテトリミノを返します。
func (g *Generator) NextPiece() *tetris.Piece {
	return tetris.NewPiece(g.NextPieceType())
}

// NextColor はぷよの5色から1色を選びます。
func (g *Generator) NextColor() grid.Color {
	return puyo.Colors[g.rnd.Intn(len(puyo.Colors))]
}

// NextPair は軸ぷよ・子ぷよの色を独立に選んだ組ぷよを返します。
func (g *Generator) NextPair() *puyo.Pair {
	main := g.NextColor()
	sub := g.NextColor()
	return puyo.NewPair(main, sub)
}
