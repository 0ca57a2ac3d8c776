package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// 効果音の名前
const (
	SoundRotate = "rotate" // 回転
	SoundPlace  = "place"  // 固定
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneDuration  = 200 * time.Millisecond
	fadeDuration  = 20 * time.Millisecond
	speakerBuffer = time.Second / 10
)

// toneFrequencies は効果音ごとの周波数(Hz)です。固定音は回転音の1オクターブ下です。
var toneFrequencies = map[string]float64{
	SoundRotate: 440,
	SoundPlace:  220,
}

// SoundManager はゲームの効果音を管理します。
// 無効な場合やスピーカーの初期化前は、再生要求を黙って無視します。
type SoundManager struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	volume      float64
	mixer       *beep.Mixer
}

// NewSoundManager は新しい SoundManager を返します。音量は [0, 1] にクランプされます。
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		enabled: enabled,
		volume:  clampVolume(volume),
		mixer:   &beep.Mixer{},
	}
}

// Initialize はスピーカーを初期化します。無効な場合は何もしません。
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		log.Println("[Audio] Audio disabled")
		return nil
	}
	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("スピーカーの初期化に失敗しました: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled は効果音が有効かどうかを返します。
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Play は指定した効果音を再生します。未知の名前は無視します。
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Sound(name, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume は音量を [0, 1] に収めて設定します。次に再生する音から反映されます。
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(volume)
}

// Volume は現在の音量を返します。
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Close は再生中の音を止めます。
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Sound は効果音のストリーマーを生成します。未知の名前の場合は nil を返します。
func Sound(name string, volume float64) beep.Streamer {
	freq, ok := toneFrequencies[name]
	if !ok {
		return nil
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("[Audio] Failed to create tone %s: %v", name, err)
		return nil
	}
	tone := beep.Take(sampleRate.N(toneDuration), sine)
	return newVolume(newFadeOut(tone, sampleRate.N(toneDuration), sampleRate.N(fadeDuration)), clampVolume(volume))
}

// newVolume は線形の音量を effects.Volume に変換します。
// math.Log2(0) は -Inf になるため、0 は無音として扱います。
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fadeOut は末尾 release サンプルを線形に減衰させ、プツッというノイズを防ぎます。
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFadeOut(s beep.Streamer, total, release int) beep.Streamer {
	return &fadeOut{streamer: s, total: total, release: release}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
