package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/grid"
)

var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // 盤面の背景
	RgbBorder     = tcell.NewRGBColor(128, 128, 128) // 枠線
	RgbText       = tcell.NewRGBColor(255, 255, 255) // 通常テキスト
	RgbHighlight  = tcell.NewRGBColor(255, 165, 0)   // 選択中の項目
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // ゲームオーバー表示
)

var (
	styleDefault   = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	styleBorder    = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBorder)
	styleHighlight = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHighlight).Bold(true)
	styleGameOver  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGameOver).Bold(true)
)

// CellStyle はマスの色に対応する描画スタイルを返します。空きマスは背景色のままです。
func CellStyle(c grid.Color) tcell.Style {
	if c == grid.ColorEmpty {
		return styleDefault
	}
	r, g, b := c.RGB()
	return tcell.StyleDefault.Background(RgbBackground).Foreground(tcell.NewRGBColor(r, g, b))
}
