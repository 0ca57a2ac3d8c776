package level

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForLines(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, cfg.ForLines(0))
	assert.Equal(t, 0, cfg.ForLines(9))
	assert.Equal(t, 1, cfg.ForLines(10))
	assert.Equal(t, 3, cfg.ForLines(35))
	assert.Equal(t, MaxLevel, cfg.ForLines(10_000), "level should be capped")

	cfg.LinesPerLevel = 1
	assert.Equal(t, 7, cfg.ForLines(7))
}

func TestForLinesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	assert.Equal(t, 0, cfg.ForLines(500))
	assert.Equal(t, BaseFallInterval, cfg.FallIntervalForLines(500))
}

func TestFallInterval(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, BaseFallInterval, cfg.FallInterval(0))
	assert.InDelta(t, float64(80*time.Millisecond), float64(cfg.FallInterval(1)), float64(time.Microsecond))
	assert.InDelta(t, float64(64*time.Millisecond), float64(cfg.FallInterval(2)), float64(time.Microsecond))
	assert.Equal(t, MinFallInterval, cfg.FallInterval(MaxLevel))
	assert.Equal(t, MinFallInterval, cfg.FallInterval(MaxLevel+5))

	// レベルが上がるほど間隔は短くなる
	prev := cfg.FallInterval(0)
	for lv := 1; lv <= MaxLevel; lv++ {
		cur := cfg.FallInterval(lv)
		assert.Less(t, cur, prev, "level %d", lv)
		prev = cur
	}
}

func TestClampLinesPerLevel(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{-3, MinLinesPerLevel},
		{0, MinLinesPerLevel},
		{1, 1},
		{10, 10},
		{20, 20},
		{21, MaxLinesPerLevel},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ClampLinesPerLevel(tc.in), "input %d", tc.in)
	}
}

func TestSoftDropIsIndependentOfLevel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4*time.Millisecond, cfg.SoftDrop)
	assert.Less(t, cfg.SoftDrop, cfg.FallInterval(5))
}
