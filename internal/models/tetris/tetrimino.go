package tetris

import "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"

// PieceType はテトリミノの種類を表します。
type PieceType int

const (
	TypeI PieceType = iota // 0: I-ミノ (シアン)
	TypeO                  // 1: O-ミノ (黄色)
	TypeT                  // 2: T-ミノ (紫)
	TypeS                  // 3: S-ミノ (緑)
	TypeZ                  // 4: Z-ミノ (赤)
	TypeJ                  // 5: J-ミノ (青)
	TypeL                  // 6: L-ミノ (オレンジ)
)

// PieceTypes は全7種類のテトリミノです。ピース生成器がここから一様に選びます。
var PieceTypes = []PieceType{TypeI, TypeO, TypeT, TypeS, TypeZ, TypeJ, TypeL}

const (
	SpawnX = 3 // 出現時の列（形状行列の左上）
	SpawnY = 0
)

type pieceDef struct {
	shape [][]int
	color grid.Color
}

// pieceDefs は各PieceTypeの初期形状（正方行列）と固定色です。
var pieceDefs = map[PieceType]pieceDef{
	TypeI: {[][]int{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, grid.ColorCyan},
	TypeO: {[][]int{
		{1, 1},
		{1, 1},
	}, grid.ColorYellow},
	TypeT: {[][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}, grid.ColorPurple},
	TypeS: {[][]int{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}, grid.ColorGreen},
	TypeZ: {[][]int{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}, grid.ColorRed},
	TypeJ: {[][]int{
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}, grid.ColorBlue},
	TypeL: {[][]int{
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	}, grid.ColorOrange},
}

// Piece はテトリミノの現在の状態（種類、形状行列、色、ボード上の左上座標）を表します。
type Piece struct {
	Type  PieceType  `json:"type"`
	Shape [][]int    `json:"shape"` // 0/1の正方行列。回転で書き換わる
	Color grid.Color `json:"color"`
	X     int        `json:"x"` // 形状行列の左上のX座標
	Y     int        `json:"y"` // 形状行列の左上のY座標
}

// NewPiece は指定された種類のテトリミノを出現位置に生成します。
func NewPiece(t PieceType) *Piece {
	def := pieceDefs[t]
	shape := make([][]int, len(def.shape))
	for r, row := range def.shape {
		shape[r] = append([]int(nil), row...)
	}
	return &Piece{
		Type:  t,
		Shape: shape,
		Color: def.color,
		X:     SpawnX,
		Y:     SpawnY,
	}
}

// Rotate はピースを時計回りに90度回転させます。位置は変わりません。
// R×C 行列は C×R 行列になり、rotated[c][R-1-r] = shape[r][c] です。
// 逆回転は用意していないため、元に戻すときは3回続けて呼び出します。
func (p *Piece) Rotate() {
	rows := len(p.Shape)
	if rows == 0 {
		return
	}
	cols := len(p.Shape[0])
	rotated := make([][]int, cols)
	for c := range rotated {
		rotated[c] = make([]int, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rotated[c][rows-1-r] = p.Shape[r][c]
		}
	}
	p.Shape = rotated
}

// Positions はピースが占有しているボード上の絶対座標を返します。
func (p *Piece) Positions() []grid.Point {
	return p.PreviewPositions(p.X, p.Y)
}

// PreviewPositions は (previewX, previewY) を左上としたときの占有座標を返します。
// 次のピースのプレビュー表示に使います。
func (p *Piece) PreviewPositions(previewX, previewY int) []grid.Point {
	positions := make([]grid.Point, 0, 4)
	for y, row := range p.Shape {
		for x, cell := range row {
			if cell != 0 {
				positions = append(positions, grid.Point{X: previewX + x, Y: previewY + y})
			}
		}
	}
	return positions
}

// Clone は現在のPieceオブジェクトのディープコピーを返します。
func (p *Piece) Clone() *Piece {
	newP := *p
	newP.Shape = make([][]int, len(p.Shape))
	for r, row := range p.Shape {
		newP.Shape[r] = append([]int(nil), row...)
	}
	return &newP
}

// StringToPieceType は文字列のテトリミノタイプ（"I", "O", "T"など）をPieceTypeに変換します。
func StringToPieceType(s string) (PieceType, bool) {
	switch s {
	case "I":
		return TypeI, true
	case "O":
		return TypeO, true
	case "T":
		return TypeT, true
	case "S":
		return TypeS, true
	case "Z":
		return TypeZ, true
	case "J":
		return TypeJ, true
	case "L":
		return TypeL, true
	default:
		return TypeI, false
	}
}

// String はPieceTypeを文字列表現に変換します。
func (t PieceType) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeO:
		return "O"
	case TypeT:
		return "T"
	case TypeS:
		return "S"
	case TypeZ:
		return "Z"
	case TypeJ:
		return "J"
	case TypeL:
		return "L"
	default:
		return "?"
	}
}
