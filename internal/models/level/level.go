package level

import (
	"math"
	"time"
)

// 落下速度の定数。BaseFallInterval から始まり、レベルごとに DecayFactor 倍になります。
const (
	BaseFallInterval     = 100 * time.Millisecond // レベル0の1マス落下間隔
	DecayFactor          = 0.8                    // レベルごとの落下間隔の倍率
	MinFallInterval      = time.Second / 1200     // 20G（1/60秒で20マス）相当
	SoftDropInterval     = 4 * time.Millisecond   // 下キー押下中の落下間隔（レベル非依存）
	MaxLevel             = 20
	DefaultLinesPerLevel = 10
	MinLinesPerLevel     = 1
	MaxLinesPerLevel     = 20
)

// Config はレベルと落下速度の計算に使う設定値です。
// 設定画面や設定ファイルで変更された値は、ここに詰めてからボードやモデルに渡します。
type Config struct {
	Enabled       bool          `json:"enabled"`         // falseならレベルは常に0
	LinesPerLevel int           `json:"lines_per_level"` // レベルアップに必要なライン数
	MaxLevel      int           `json:"max_level"`
	BaseInterval  time.Duration `json:"base_interval"`
	DecayFactor   float64       `json:"decay_factor"`
	MinInterval   time.Duration `json:"min_interval"`
	SoftDrop      time.Duration `json:"soft_drop"`
}

// DefaultConfig はデフォルトのレベル設定を返します。
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		LinesPerLevel: DefaultLinesPerLevel,
		MaxLevel:      MaxLevel,
		BaseInterval:  BaseFallInterval,
		DecayFactor:   DecayFactor,
		MinInterval:   MinFallInterval,
		SoftDrop:      SoftDropInterval,
	}
}

// ClampLinesPerLevel は設定値を [MinLinesPerLevel, MaxLinesPerLevel] に収めます。
// モデル自体は検証済みの値を前提とするため、外部から受け取った値は必ずここを通します。
func ClampLinesPerLevel(n int) int {
	if n < MinLinesPerLevel {
		return MinLinesPerLevel
	}
	if n > MaxLinesPerLevel {
		return MaxLinesPerLevel
	}
	return n
}

// ForLines は累計クリアライン数からレベルを計算します。上限は MaxLevel です。
func (c Config) ForLines(lines int) int {
	if !c.Enabled || c.LinesPerLevel <= 0 {
		return 0
	}
	lv := lines / c.LinesPerLevel
	if lv > c.MaxLevel {
		return c.MaxLevel
	}
	return lv
}

// FallInterval は現在のレベルに基づいた自動落下間隔を返します。
// レベルが上限に達した場合は最小間隔（20G）を返します。
func (c Config) FallInterval(level int) time.Duration {
	if level >= c.MaxLevel {
		return c.MinInterval
	}
	if level < 0 {
		level = 0
	}
	return time.Duration(float64(c.BaseInterval) * math.Pow(c.DecayFactor, float64(level)))
}

// FallIntervalForLines は ForLines と FallInterval を組み合わせたものです。
func (c Config) FallIntervalForLines(lines int) time.Duration {
	return c.FallInterval(c.ForLines(lines))
}
