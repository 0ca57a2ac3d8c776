package ui

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/audio"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/generator"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
	puyogame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/puyo"
	tetrisgame "github.com/progate-hackathon-strawberry-flavor/blockfall/internal/services/tetris"
)

// Scene は現在表示している画面です。
type Scene int

const (
	SceneMenu Scene = iota
	SceneTetris
	ScenePuyo
	SceneSettings
)

const (
	frameInterval = 16 * time.Millisecond // 約60FPS
	// 端末はキーを離したイベントを送らないため、下キーの入力から一定時間だけソフトドロップを続けます。
	softDropHold = 150 * time.Millisecond
	volumeStep   = 0.1
)

// SoundPlayer は効果音の再生先です。*audio.SoundManager が満たします。
type SoundPlayer interface {
	Play(name string)
	SetVolume(volume float64)
}

// Options は App の依存です。
type Options struct {
	Store       *settings.Store                      // nil の場合は保存しない
	Sound       SoundPlayer                          // nil の場合は無音
	Generator   *generator.Generator                 // ピースと組ぷよの生成器
	LevelConfig func(linesPerLevel int) level.Config // nil の場合はデフォルト設定
}

// App はゲーム選択・設定・各ゲームの画面遷移と入力を管理します。
// ゲームの進行は services パッケージのドライバーに任せ、ここでは経過時間とキー入力を渡すだけです。
type App struct {
	screen   tcell.Screen
	renderer *Renderer
	opts     Options

	scene         Scene
	menuIndex     int
	settingsIndex int
	settings      settings.Settings

	tetris       *tetrisgame.GameState
	puyo         *puyogame.GameState
	softDropLeft time.Duration
}

// NewApp は新しい App を返します。設定はストアから読み込みます。
func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.Generator == nil {
		opts.Generator = generator.New(0)
	}
	if opts.LevelConfig == nil {
		opts.LevelConfig = func(linesPerLevel int) level.Config {
			cfg := level.DefaultConfig()
			cfg.LinesPerLevel = level.ClampLinesPerLevel(linesPerLevel)
			return cfg
		}
	}

	s := settings.Default()
	if opts.Store != nil {
		s = opts.Store.Load()
	}

	a := &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		opts:     opts,
		settings: s,
	}
	if a.opts.Sound != nil {
		a.opts.Sound.SetVolume(s.Volume)
	}
	return a
}

// Scene は現在の画面を返します。
func (a *App) Scene() Scene { return a.scene }

// Settings は現在の設定を返します。
func (a *App) Settings() settings.Settings { return a.settings }

// TetrisState はライン消去ゲームの状態を返します。未開始なら nil です。
func (a *App) TetrisState() *tetrisgame.GameState { return a.tetris }

// PuyoState は連鎖消去ゲームの状態を返します。未開始なら nil です。
func (a *App) PuyoState() *puyogame.GameState { return a.puyo }

// Run はイベントループを実行します。終了キーが押されるか ctx がキャンセルされると戻ります。
// スクリーンの初期化と Fini は呼び出し側の責任です。
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.HandleKey(KeyFromEvent(ev)) {
					return nil
				}
				a.Draw()
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			a.Update(now.Sub(last))
			last = now
			a.Draw()
		}
	}
}

// HandleKey は論理キーを現在の画面に適用します。
//
// Returns:
//   bool: アプリを続ける場合はtrue、終了する場合はfalse
func (a *App) HandleKey(k Key) bool {
	if k == KeyQuit {
		return false
	}

	switch a.scene {
	case SceneMenu:
		return a.handleMenuKey(k)
	case SceneSettings:
		a.handleSettingsKey(k)
	case SceneTetris:
		a.handleTetrisKey(k)
	case ScenePuyo:
		a.handlePuyoKey(k)
	}
	return true
}

// Update は経過時間をゲームに渡します。ゲーム画面以外では何もしません。
func (a *App) Update(elapsed time.Duration) {
	switch a.scene {
	case SceneTetris:
		if a.expireSoftDrop(elapsed) {
			tetrisgame.ApplyPlayerInput(a.tetris, tetrisgame.ActionSoftDropEnd)
		}
		if tetrisgame.Tick(a.tetris, elapsed) {
			a.play(audio.SoundPlace)
		}
	case ScenePuyo:
		if a.expireSoftDrop(elapsed) {
			puyogame.ApplyPlayerInput(a.puyo, puyogame.ActionSoftDropEnd)
		}
		if puyogame.Tick(a.puyo, elapsed) {
			a.play(audio.SoundPlace)
		}
	}
}

// Draw は現在の画面を描画します。
func (a *App) Draw() {
	switch a.scene {
	case SceneMenu:
		a.renderer.RenderMenu(a.menuIndex)
	case SceneSettings:
		a.renderer.RenderSettings(a.settings, a.settingsIndex)
	case SceneTetris:
		a.renderer.RenderTetris(a.tetris)
	case ScenePuyo:
		a.renderer.RenderPuyo(a.puyo)
	}
}

func (a *App) handleMenuKey(k Key) bool {
	switch k {
	case KeyEscape:
		return false
	case KeyUp:
		a.menuIndex = (a.menuIndex + len(MenuItems) - 1) % len(MenuItems)
	case KeyDown:
		a.menuIndex = (a.menuIndex + 1) % len(MenuItems)
	case KeyEnter:
		a.selectMenu(a.menuIndex)
	case KeyTetris:
		a.selectMenu(0)
	case KeyPuyo:
		a.selectMenu(1)
	case KeySettings:
		a.selectMenu(2)
	}
	return true
}

func (a *App) selectMenu(i int) {
	a.menuIndex = i
	a.softDropLeft = 0
	switch i {
	case 0:
		a.tetris = tetrisgame.NewGameState(a.levelConfig(), a.opts.Generator)
		a.scene = SceneTetris
		log.Printf("[UI] Tetris started: %s", a.tetris.GameID)
	case 1:
		a.puyo = puyogame.NewGameState(a.levelConfig(), a.opts.Generator)
		a.scene = ScenePuyo
		log.Printf("[UI] Puyo started: %s", a.puyo.GameID)
	case 2:
		a.settingsIndex = 0
		a.scene = SceneSettings
	}
}

func (a *App) levelConfig() level.Config {
	return a.opts.LevelConfig(a.settings.LinesPerLevel)
}

func (a *App) handleTetrisKey(k Key) {
	s := a.tetris
	switch k {
	case KeyEscape:
		a.scene = SceneMenu
	case KeyEnter:
		if s.IsGameOver {
			s.Restart()
			a.softDropLeft = 0
		}
	case KeyLeft:
		tetrisgame.ApplyPlayerInput(s, tetrisgame.ActionMoveLeft)
	case KeyRight:
		tetrisgame.ApplyPlayerInput(s, tetrisgame.ActionMoveRight)
	case KeyUp:
		if tetrisgame.ApplyPlayerInput(s, tetrisgame.ActionRotate) {
			a.play(audio.SoundRotate)
		}
	case KeyDown:
		tetrisgame.ApplyPlayerInput(s, tetrisgame.ActionSoftDropStart)
		a.holdSoftDrop(s.IsGameOver)
	}
}

func (a *App) handlePuyoKey(k Key) {
	s := a.puyo
	switch k {
	case KeyEscape:
		a.scene = SceneMenu
	case KeyEnter:
		if s.IsGameOver {
			s.Restart()
			a.softDropLeft = 0
		}
	case KeyLeft:
		puyogame.ApplyPlayerInput(s, puyogame.ActionMoveLeft)
	case KeyRight:
		puyogame.ApplyPlayerInput(s, puyogame.ActionMoveRight)
	case KeyUp:
		if puyogame.ApplyPlayerInput(s, puyogame.ActionRotate) {
			a.play(audio.SoundRotate)
		}
	case KeyRotateLeft:
		if puyogame.ApplyPlayerInput(s, puyogame.ActionRotateLeft) {
			a.play(audio.SoundRotate)
		}
	case KeyDown:
		puyogame.ApplyPlayerInput(s, puyogame.ActionSoftDropStart)
		a.holdSoftDrop(s.IsGameOver)
	}
}

func (a *App) holdSoftDrop(gameOver bool) {
	if !gameOver {
		a.softDropLeft = softDropHold
	}
}

// expireSoftDrop はソフトドロップの残り時間を減らし、ちょうど切れたときにtrueを返します。
func (a *App) expireSoftDrop(elapsed time.Duration) bool {
	if a.softDropLeft <= 0 {
		return false
	}
	a.softDropLeft -= elapsed
	return a.softDropLeft <= 0
}

func (a *App) handleSettingsKey(k Key) {
	switch k {
	case KeyEscape, KeyEnter:
		a.scene = SceneMenu
	case KeyUp:
		a.settingsIndex = (a.settingsIndex + SettingsRows - 1) % SettingsRows
	case KeyDown:
		a.settingsIndex = (a.settingsIndex + 1) % SettingsRows
	case KeyLeft:
		a.adjustSetting(-1)
	case KeyRight:
		a.adjustSetting(1)
	}
}

// adjustSetting は選択中の設定を1段階変更し、すぐに保存します。
func (a *App) adjustSetting(dir int) {
	next := a.settings
	switch a.settingsIndex {
	case 0:
		// 0.1刻みで誤差が溜まらないよう整数で計算する
		steps := int(next.Volume/volumeStep+0.5) + dir
		next.Volume = float64(steps) * volumeStep
	case 1:
		next.LinesPerLevel += dir
	}
	next = next.Clamp()
	if next == a.settings {
		return
	}
	a.settings = next

	if a.opts.Sound != nil {
		a.opts.Sound.SetVolume(next.Volume)
	}
	if a.opts.Store != nil {
		if err := a.opts.Store.Save(next); err != nil {
			log.Printf("[UI] Failed to save settings: %v", err)
		}
	}
}

func (a *App) play(name string) {
	if a.opts.Sound != nil {
		a.opts.Sound.Play(name)
	}
}
