package ui

import "github.com/gdamore/tcell/v2"

// Key は画面遷移とゲーム操作で使う論理キーです。
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyRotateLeft
	KeyEnter
	KeyEscape
	KeyQuit
	KeyTetris   // '1'
	KeyPuyo     // '2'
	KeySettings // '3'
)

// KeyFromEvent は tcell のキーイベントを論理キーに変換します。
// 割り当てのないキーは KeyNone になります。
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return keyFromRune(ev.Rune())
	}
	return KeyNone
}

func keyFromRune(r rune) Key {
	switch r {
	case 'h', 'a':
		return KeyLeft
	case 'l', 'd':
		return KeyRight
	case 'k', 'w', 'x':
		return KeyUp
	case 'j', 's':
		return KeyDown
	case 'z':
		return KeyRotateLeft
	case 'q':
		return KeyQuit
	case '1':
		return KeyTetris
	case '2':
		return KeyPuyo
	case '3':
		return KeySettings
	}
	return KeyNone
}
