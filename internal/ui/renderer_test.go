package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/generator"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/puyo"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
	puyogame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/puyo"
	tetrisgame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/tetris"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText は画面の1行を文字列として返します。
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, text string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), text) {
			return true
		}
	}
	return false
}

func TestRenderTetrisBoard(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := tetrisgame.NewGameState(level.DefaultConfig(), generator.New(3))
	state.Board.Grid().Set(0, grid.DefaultHeight-1, grid.ColorRed)

	r.RenderTetris(state)

	// 固定済みのマスは横2文字のブロックで描かれる
	sx, sy := CellOrigin(0, grid.DefaultHeight-1)
	for i := 0; i < CellWidth; i++ {
		ch, _, style, _ := screen.GetContent(sx+i, sy)
		assert.Equal(t, blockRune, ch)
		assert.Equal(t, CellStyle(grid.ColorRed), style)
	}

	// 空きマスは空白
	ch, _, _, _ := screen.GetContent(CellOrigin(5, grid.DefaultHeight-1))
	assert.Equal(t, ' ', ch)

	// 操作中のピース
	for _, p := range state.CurrentPiece.Positions() {
		if p.Y < 0 {
			continue
		}
		ch, _, style, _ := screen.GetContent(CellOrigin(p.X, p.Y))
		assert.Equal(t, blockRune, ch, "piece cell %v", p)
		assert.Equal(t, CellStyle(state.CurrentPiece.Color), style)
	}

	assert.True(t, screenContains(screen, "NEXT"))
	assert.True(t, screenContains(screen, "LINES: 0"))
	assert.True(t, screenContains(screen, "LEVEL: 0"))
	assert.False(t, screenContains(screen, "GAME OVER"))
}

func TestRenderTetrisBorder(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := tetrisgame.NewGameState(level.DefaultConfig(), generator.New(3))

	r.RenderTetris(state)

	right := BoardX + grid.DefaultWidth*CellWidth + 1
	bottom := BoardY + grid.DefaultHeight + 1
	ch, _, _, _ := screen.GetContent(BoardX, BoardY)
	assert.Equal(t, '│', ch)
	ch, _, _, _ = screen.GetContent(right, bottom)
	assert.Equal(t, '┘', ch)
}

func TestRenderTetrisNextPreview(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := tetrisgame.NewGameState(level.DefaultConfig(), generator.New(3))

	r.RenderTetris(state)

	sx := SidebarX(grid.DefaultWidth)
	for _, p := range state.NextPiece.PreviewPositions(0, 0) {
		ch, _, style, _ := screen.GetContent(sx+p.X*CellWidth, BoardY+1+p.Y)
		assert.Equal(t, blockRune, ch, "preview cell %v", p)
		assert.Equal(t, CellStyle(state.NextPiece.Color), style)
	}
}

func TestRenderTetrisLevelHidden(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	cfg := level.DefaultConfig()
	cfg.Enabled = false
	state := tetrisgame.NewGameState(cfg, generator.New(3))

	r.RenderTetris(state)

	assert.True(t, screenContains(screen, "LINES: 0"))
	assert.False(t, screenContains(screen, "LEVEL:"))
}

func TestRenderTetrisGameOver(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := tetrisgame.NewGameState(level.DefaultConfig(), generator.New(3))
	state.IsGameOver = true

	r.RenderTetris(state)

	assert.True(t, screenContains(screen, "GAME OVER"))
	assert.True(t, screenContains(screen, "Enter: restart"))
}

func TestRenderPuyo(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := puyogame.NewGameState(level.DefaultConfig(), generator.New(3))
	state.MaxChain = 2
	state.LastChain = &puyo.ChainReport{Steps: make([]puyo.ClearResult, 2), Points: 140}
	state.Board.Score = 140

	r.RenderPuyo(state)

	// 軸ぷよは見える位置、子ぷよは見えない領域にいる
	axis := state.CurrentPair.Main
	ch, _, style, _ := screen.GetContent(CellOrigin(axis.X, axis.Y))
	assert.Equal(t, blockRune, ch)
	assert.Equal(t, CellStyle(axis.Color), style)

	assert.True(t, screenContains(screen, "SCORE: 140"))
	assert.True(t, screenContains(screen, "MAX CHAIN: 2"))
	assert.True(t, screenContains(screen, "2 CHAIN!"))
	assert.True(t, screenContains(screen, "z: rotate left"))
}

func TestRenderPuyoPreviewIsVertical(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)
	state := puyogame.NewGameState(level.DefaultConfig(), generator.New(3))

	r.RenderPuyo(state)

	sx := SidebarX(grid.DefaultWidth) + CellWidth
	_, _, subStyle, _ := screen.GetContent(sx, BoardY+1)
	_, _, mainStyle, _ := screen.GetContent(sx, BoardY+2)
	assert.Equal(t, CellStyle(state.NextPair.Sub.Color), subStyle)
	assert.Equal(t, CellStyle(state.NextPair.Main.Color), mainStyle)
}

func TestRenderMenu(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.RenderMenu(1)

	assert.True(t, screenContains(screen, "SELECT GAME"))
	assert.True(t, screenContains(screen, "  1: TETRIS"))
	assert.True(t, screenContains(screen, "> 2: PUYO PUYO"))
	assert.True(t, screenContains(screen, "  3: SETTINGS"))
}

func TestRenderSettings(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.RenderSettings(settings.Settings{Volume: 0.7, LinesPerLevel: 12}, 1)

	assert.True(t, screenContains(screen, "  VOLUME:  70%"))
	assert.True(t, screenContains(screen, "> LINES PER LEVEL: 12"))
}

func TestCellStyle(t *testing.T) {
	assert.Equal(t, styleDefault, CellStyle(grid.ColorEmpty))
	assert.NotEqual(t, CellStyle(grid.ColorRed), CellStyle(grid.ColorBlue))
}
