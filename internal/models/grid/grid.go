package grid

const (
	DefaultWidth  = 10 // ボードの幅（両ゲーム共通）
	DefaultHeight = 20 // ボードの高さ（表示部分）
)

// Color はマスの状態を表します。ゼロ値（ColorEmpty）は空きマスです。
// 色は描画用の塗りであると同時に占有マーカーでもあり、
// 同じ色同士は連結判定で「同じグループ」とみなされます。
type Color int

const (
	ColorEmpty  Color = iota // 0: 空のマス
	ColorCyan                // I-ミノ
	ColorYellow              // O-ミノ / ぷよ
	ColorPurple              // T-ミノ / ぷよ
	ColorGreen               // S-ミノ / ぷよ
	ColorRed                 // Z-ミノ / ぷよ
	ColorBlue                // J-ミノ / ぷよ
	ColorOrange              // L-ミノ
)

var colorRGB = map[Color][3]int32{
	ColorCyan:   {0, 255, 255},
	ColorYellow: {255, 255, 0},
	ColorPurple: {128, 0, 128},
	ColorGreen:  {0, 255, 0},
	ColorRed:    {255, 0, 0},
	ColorBlue:   {0, 0, 255},
	ColorOrange: {255, 165, 0},
}

// RGB は描画側が使うRGB値を返します。空きマスは黒です。
func (c Color) RGB() (r, g, b int32) {
	rgb := colorRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// Point はボード上の座標です。yは下向きに増加し、y < 0 は出現用の見えない領域です。
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell は座標と色の組です。ぷよのように色がセルごとに異なる場合に使います。
type Cell struct {
	Point
	Color Color `json:"color"`
}

// Grid は width × height の占有マップです。Cells[y][x] でアクセスします。
type Grid struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]Color `json:"cells"`
}

// New は空のグリッドを作成して返します。
func New(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.Reset()
	return g
}

// Reset は全てのマスを空にします。
func (g *Grid) Reset() {
	g.Cells = make([][]Color, g.Height)
	for y := range g.Cells {
		g.Cells[y] = make([]Color, g.Width)
	}
}

// InBounds は座標が表示領域内にあるかどうかを返します。
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At は指定座標の色を返します。範囲外は ColorEmpty として扱います。
func (g *Grid) At(x, y int) Color {
	if !g.InBounds(x, y) {
		return ColorEmpty
	}
	return g.Cells[y][x]
}

// Set は指定座標に色を書き込みます。範囲外への書き込みは無視され、falseを返します。
func (g *Grid) Set(x, y int, c Color) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Cells[y][x] = c
	return true
}

// IsEmpty は指定座標が空きマスかどうかを返します。
func (g *Grid) IsEmpty(x, y int) bool {
	return g.At(x, y) == ColorEmpty
}

// IsValidPlacement は与えられたセル集合がグリッド上に配置可能かを判定します。
//
// 全てのセルについて 0 <= x < Width かつ y < Height を満たし、
// さらに y >= 0 の場合のみそのマスが空いている必要があります。
// y < 0 のセルは出現用バッファとして常に有効です。
//
// Parameters:
//   points : 判定するセルの絶対座標
// Returns:
//   bool: 配置可能ならtrue
func (g *Grid) IsValidPlacement(points []Point) bool {
	for _, p := range points {
		if p.X < 0 || p.X >= g.Width || p.Y >= g.Height {
			return false
		}
		if p.Y >= 0 && g.Cells[p.Y][p.X] != ColorEmpty {
			return false
		}
	}
	return true
}

// IsRowFull はy行目の全てのマスが埋まっているかどうかを返します。
func (g *Grid) IsRowFull(y int) bool {
	for _, c := range g.Cells[y] {
		if c == ColorEmpty {
			return false
		}
	}
	return true
}

// RemoveRow はy行目を削除し、最上段に空の行を挿入します。
// y行目より上の行は1段ずつ下にずれます。
func (g *Grid) RemoveRow(y int) {
	copy(g.Cells[1:y+1], g.Cells[:y])
	g.Cells[0] = make([]Color, g.Width)
}

// Occupied は埋まっているマスの数を返します。
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c != ColorEmpty {
				n++
			}
		}
	}
	return n
}

// Snapshot は描画用にセルのコピーを返します。
// 呼び出し側がコピーを書き換えてもグリッドには影響しません。
func (g *Grid) Snapshot() [][]Color {
	rows := make([][]Color, g.Height)
	for y, row := range g.Cells {
		rows[y] = append([]Color(nil), row...)
	}
	return rows
}

// Clone はグリッドのディープコピーを返します。
func (g *Grid) Clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, Cells: g.Snapshot()}
}
