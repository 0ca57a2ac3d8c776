package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
	puyogame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/puyo"
	tetrisgame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/tetris"
)

// 画面レイアウト。1マスは横2文字で描きます。
const (
	BoardX     = 2 // 盤面の枠の左上X
	BoardY     = 1 // 盤面の枠の左上Y
	CellWidth  = 2
	sidebarGap = 3
	previewBox = 4 // プレビュー領域（マス単位）
)

const blockRune = '█'

// Renderer は tcell のスクリーンにゲーム画面を描画します。
// 状態は持たず、渡されたゲーム状態をそのまま描きます。
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer は新しい Renderer を返します。
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SidebarX はサイドバーの左端X座標を返します。
func SidebarX(boardWidth int) int {
	return BoardX + boardWidth*CellWidth + 2 + sidebarGap
}

// CellOrigin は盤面上のマス (x, y) が描かれる画面上の左端座標を返します。
func CellOrigin(x, y int) (int, int) {
	return BoardX + 1 + x*CellWidth, BoardY + 1 + y
}

// RenderTetris はライン消去ゲームの1フレームを描画します。
func (r *Renderer) RenderTetris(state *tetrisgame.GameState) {
	r.screen.Clear()
	g := state.Board.Grid()
	r.drawBoard(g)

	if state.CurrentPiece != nil && !state.IsGameOver {
		r.drawCells(pointsToCells(state.CurrentPiece.Positions(), state.CurrentPiece.Color))
	}

	sx := SidebarX(g.Width)
	r.drawText(sx, BoardY, "NEXT", styleDefault)
	if state.NextPiece != nil {
		cells := pointsToCells(state.NextPiece.PreviewPositions(0, 0), state.NextPiece.Color)
		r.drawPreview(sx, BoardY+1, cells)
	}

	y := BoardY + previewBox + 2
	r.drawText(sx, y, fmt.Sprintf("LINES: %d", state.LinesCleared()), styleDefault)
	if state.Board.LevelConfig().Enabled {
		r.drawText(sx, y+1, fmt.Sprintf("LEVEL: %d", state.Level()), styleDefault)
	}
	r.drawHelp(sx, y+3, false)

	if state.IsGameOver {
		r.drawGameOver(g.Width, g.Height)
	}
	r.screen.Show()
}

// RenderPuyo は連鎖消去ゲームの1フレームを描画します。
func (r *Renderer) RenderPuyo(state *puyogame.GameState) {
	r.screen.Clear()
	g := state.Board.Grid()
	r.drawBoard(g)

	if state.CurrentPair != nil && !state.IsGameOver {
		r.drawCells(state.CurrentPair.Cells())
	}

	sx := SidebarX(g.Width)
	r.drawText(sx, BoardY, "NEXT", styleDefault)
	if state.NextPair != nil {
		// 子ぷよが上に来るので1段下げて置く
		r.drawPreview(sx, BoardY+1, state.NextPair.PreviewCells(1, 1))
	}

	y := BoardY + previewBox + 2
	r.drawText(sx, y, fmt.Sprintf("SCORE: %d", state.Score()), styleDefault)
	r.drawText(sx, y+1, fmt.Sprintf("MAX CHAIN: %d", state.MaxChain), styleDefault)
	if state.LastChain != nil && state.LastChain.Chains() > 0 {
		r.drawText(sx, y+2, fmt.Sprintf("%d CHAIN!", state.LastChain.Chains()), styleHighlight)
	}
	r.drawHelp(sx, y+4, true)

	if state.IsGameOver {
		r.drawGameOver(g.Width, g.Height)
	}
	r.screen.Show()
}

// MenuItems はゲーム選択画面の項目です。
var MenuItems = []string{
	"1: TETRIS",
	"2: PUYO PUYO",
	"3: SETTINGS",
}

// RenderMenu はゲーム選択画面を描画します。
func (r *Renderer) RenderMenu(selected int) {
	r.screen.Clear()
	r.drawText(BoardX, BoardY, "SELECT GAME", styleDefault)
	for i, item := range MenuItems {
		style := styleDefault
		prefix := "  "
		if i == selected {
			style = styleHighlight
			prefix = "> "
		}
		r.drawText(BoardX, BoardY+2+i, prefix+item, style)
	}
	r.drawText(BoardX, BoardY+3+len(MenuItems), "Enter: start  q: quit", styleBorder)
	r.screen.Show()
}

// SettingsRows は設定画面の行数です。
const SettingsRows = 2

// RenderSettings は設定画面を描画します。
func (r *Renderer) RenderSettings(s settings.Settings, selected int) {
	r.screen.Clear()
	r.drawText(BoardX, BoardY, "SETTINGS", styleDefault)

	rows := []string{
		fmt.Sprintf("VOLUME: %3d%%", int(s.Volume*100+0.5)),
		fmt.Sprintf("LINES PER LEVEL: %d", s.LinesPerLevel),
	}
	for i, row := range rows {
		style := styleDefault
		prefix := "  "
		if i == selected {
			style = styleHighlight
			prefix = "> "
		}
		r.drawText(BoardX, BoardY+2+i, prefix+row, style)
	}
	r.drawText(BoardX, BoardY+3+len(rows), "Left/Right: change  Esc: back", styleBorder)
	r.screen.Show()
}

func (r *Renderer) drawBoard(g *grid.Grid) {
	right := BoardX + g.Width*CellWidth + 1
	bottom := BoardY + g.Height + 1

	for x := BoardX; x <= right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := BoardY; y < bottom; y++ {
		r.screen.SetContent(BoardX, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(BoardX, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.drawCell(x, y, g.Cells[y][x])
		}
	}
}

// drawCells は操作中のピースを描きます。見えない領域（y < 0）のマスは描きません。
func (r *Renderer) drawCells(cells []grid.Cell) {
	for _, c := range cells {
		if c.Y < 0 {
			continue
		}
		r.drawCell(c.X, c.Y, c.Color)
	}
}

func (r *Renderer) drawCell(x, y int, c grid.Color) {
	sx, sy := CellOrigin(x, y)
	ch := ' '
	if c != grid.ColorEmpty {
		ch = blockRune
	}
	style := CellStyle(c)
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func (r *Renderer) drawPreview(px, py int, cells []grid.Cell) {
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= previewBox || c.Y >= previewBox {
			continue
		}
		style := CellStyle(c.Color)
		for i := 0; i < CellWidth; i++ {
			r.screen.SetContent(px+c.X*CellWidth+i, py+c.Y, blockRune, nil, style)
		}
	}
}

func (r *Renderer) drawHelp(x, y int, puyo bool) {
	lines := []string{
		"Left/Right: move",
		"Up: rotate",
		"Down: soft drop",
	}
	if puyo {
		lines = append(lines, "z: rotate left")
	}
	lines = append(lines, "Esc: menu")
	for i, l := range lines {
		r.drawText(x, y+i, l, styleBorder)
	}
}

func (r *Renderer) drawGameOver(boardWidth, boardHeight int) {
	msg := "GAME OVER"
	hint := "Enter: restart"
	inner := boardWidth * CellWidth
	y := BoardY + boardHeight/2
	r.drawText(BoardX+1+(inner-len(msg))/2, y, msg, styleGameOver)
	r.drawText(BoardX+1+(inner-len(hint))/2, y+1, hint, styleGameOver)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func pointsToCells(points []grid.Point, c grid.Color) []grid.Cell {
	cells := make([]grid.Cell, len(points))
	for i, p := range points {
		cells[i] = grid.Cell{Point: p, Color: c}
	}
	return cells
}
