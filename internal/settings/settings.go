package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
)

// Settings はユーザーが設定画面で変更できる値です。
type Settings struct {
	Volume        float64 `json:"volume"`          // 0.0〜1.0
	LinesPerLevel int     `json:"lines_per_level"` // 1〜20
}

// Default はデフォルトの設定を返します。
func Default() Settings {
	return Settings{
		Volume:        1.0,
		LinesPerLevel: level.DefaultLinesPerLevel,
	}
}

// Clamp は各値を有効範囲に収めた設定を返します。
func (s Settings) Clamp() Settings {
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	s.LinesPerLevel = level.ClampLinesPerLevel(s.LinesPerLevel)
	return s
}

// Store は設定をJSONファイルに保存・読み込みします。
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore は指定したパスを使う Store を返します。
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path は設定ファイルのパスを返します。
func (s *Store) Path() string {
	return s.path
}

// Load は設定ファイルを読み込みます。
// ファイルがない・壊れている場合はデフォルト値を返し、エラーにはしません。
// ファイルに含まれない項目もデフォルト値になります。
func (s *Store) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Settings] 設定ファイルの読み込みに失敗しました。デフォルト値を使います: %v", err)
		}
		return Default()
	}

	loaded := Default()
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("[Settings] 設定ファイルの形式が不正です。デフォルト値を使います: %v", err)
		return Default()
	}
	return loaded.Clamp()
}

// Save は設定をクランプしてからファイルに書き込みます。
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(settings.Clamp())
	if err != nil {
		return fmt.Errorf("設定のエンコードに失敗しました: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("設定ファイルの書き込みに失敗しました: %w", err)
	}
	return nil
}
