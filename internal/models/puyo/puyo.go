package puyo

import "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"

// Colors はぷよに使う5色のパレットです。
var Colors = []grid.Color{
	grid.ColorRed,
	grid.ColorBlue,
	grid.ColorGreen,
	grid.ColorYellow,
	grid.ColorPurple,
}

const (
	SpawnX = 4 // 軸ぷよの出現列（中央）
	SpawnY = 0
)

// Rotation は組ぷよの回転状態です。子ぷよが軸ぷよのどちら側にいるかを表します。
type Rotation int

const (
	RotationUp    Rotation = iota // 0: 縦（子ぷよが上）
	RotationRight                 // 1: 右
	RotationDown                  // 2: 逆さ（子ぷよが下）
	RotationLeft                  // 3: 左
)

// subOffsets は回転状態ごとの、軸ぷよから見た子ぷよの位置です。
var subOffsets = [4]grid.Point{
	RotationUp:    {X: 0, Y: -1},
	RotationRight: {X: 1, Y: 0},
	RotationDown:  {X: 0, Y: 1},
	RotationLeft:  {X: -1, Y: 0},
}

// SubOffset は回転状態に対応する子ぷよのオフセットを返します。
func (r Rotation) SubOffset() grid.Point {
	return subOffsets[r]
}

// Puyo は1つのぷよ（座標と色）です。
type Puyo struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color grid.Color `json:"color"`
}

// Pair は回転可能な2つ組のぷよです。
// X, Y はプレビュー描画用の追跡座標で、衝突判定には Main/Sub の座標を使います。
type Pair struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Main     Puyo     `json:"main"`
	Sub      Puyo     `json:"sub"`
	Rotation Rotation `json:"rotation"`
}

// NewPair は指定された2色の組ぷよを出現位置に生成します。子ぷよは見えない領域（y=-1）に置かれます。
func NewPair(mainColor, subColor grid.Color) *Pair {
	p := &Pair{
		X:        SpawnX,
		Y:        SpawnY,
		Main:     Puyo{X: SpawnX, Y: SpawnY, Color: mainColor},
		Sub:      Puyo{Color: subColor},
		Rotation: RotationUp,
	}
	p.updateSub()
	return p
}

// RotateClockwise は組ぷよを時計回りに回転させます。
func (p *Pair) RotateClockwise() {
	p.Rotation = (p.Rotation + 1) % 4
	p.updateSub()
}

// RotateCounterClockwise は組ぷよを反時計回りに回転させます。
func (p *Pair) RotateCounterClockwise() {
	p.Rotation = (p.Rotation + 3) % 4 // 負の値にならないように +3
	p.updateSub()
}

// updateSub は子ぷよの位置を軸ぷよとオフセット表から計算し直します。
// 既存の座標を回転させるのではないため、何度回してもずれは蓄積しません。
func (p *Pair) updateSub() {
	off := p.Rotation.SubOffset()
	p.Sub.X = p.Main.X + off.X
	p.Sub.Y = p.Main.Y + off.Y
}

// Move は組ぷよ全体を (dx, dy) だけ移動させます。
func (p *Pair) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
	p.Main.X += dx
	p.Main.Y += dy
	p.Sub.X += dx
	p.Sub.Y += dy
}

// Cells は軸ぷよ・子ぷよの順に座標と色を返します。
func (p *Pair) Cells() []grid.Cell {
	return []grid.Cell{
		{Point: grid.Point{X: p.Main.X, Y: p.Main.Y}, Color: p.Main.Color},
		{Point: grid.Point{X: p.Sub.X, Y: p.Sub.Y}, Color: p.Sub.Color},
	}
}

// Positions は衝突判定用に2つのぷよの座標を返します。
func (p *Pair) Positions() []grid.Point {
	return []grid.Point{
		{X: p.Main.X, Y: p.Main.Y},
		{X: p.Sub.X, Y: p.Sub.Y},
	}
}

// PreviewCells は次のぷよの表示用の座標と色を返します。
// プレビューは常に縦向き（子ぷよが上）で表示します。
func (p *Pair) PreviewCells(previewX, previewY int) []grid.Cell {
	return []grid.Cell{
		{Point: grid.Point{X: previewX, Y: previewY}, Color: p.Main.Color},
		{Point: grid.Point{X: previewX, Y: previewY - 1}, Color: p.Sub.Color},
	}
}

// Clone は組ぷよのコピーを返します。
func (p *Pair) Clone() *Pair {
	c := *p
	return &c
}
