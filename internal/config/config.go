package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
)

// Config は環境変数から読み込んだアプリケーション設定です。
// グローバルには置かず、値として各コンストラクタに渡します。
type Config struct {
	AppEnv         string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	BypassAuth     bool
	AllowedOrigins []string
	SettingsPath   string
	GameSeed       int64 // 0 の場合は現在時刻
	AudioEnabled   bool
	LevelEnabled   bool
	LinesPerLevel  int // 0 の場合は設定ファイルの値を使う
}

const defaultPort = "8080"

var defaultAllowedOrigins = []string{"http://localhost:3000"}

// Load は .env ファイル（本番環境以外）と環境変数から設定を読み込みます。
//
// Parameters:
//   envFiles : 読み込む .env ファイル。省略時はカレントディレクトリの .env
// Returns:
//   *Config: 読み込んだ設定
//   error  : 数値や真偽値の形式が不正な場合
func Load(envFiles ...string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(envFiles...); err != nil {
			log.Printf("[Config] warning: Error loading .env file (this is fine in production): %v", err)
		}
	}

	cfg := &Config{
		AppEnv:         os.Getenv("APP_ENV"),
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: defaultAllowedOrigins,
		SettingsPath:   getEnv("SETTINGS_PATH", DefaultSettingsPath()),
	}

	var err error
	if cfg.BypassAuth, err = getBool("BYPASS_AUTH", false); err != nil {
		return nil, err
	}
	if cfg.AudioEnabled, err = getBool("AUDIO_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.LevelEnabled, err = getBool("LEVEL_ENABLED", true); err != nil {
		return nil, err
	}

	if v := os.Getenv("GAME_SEED"); v != "" {
		cfg.GameSeed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GAME_SEED の形式が不正です: %w", err)
		}
	}

	if v := os.Getenv("LINES_PER_LEVEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("LINES_PER_LEVEL の形式が不正です: %w", err)
		}
		cfg.LinesPerLevel = level.ClampLinesPerLevel(n)
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	return cfg, nil
}

// LevelConfig はレベル設定を組み立てます。
// 環境変数で LINES_PER_LEVEL が指定されていればそちらを優先します。
func (c *Config) LevelConfig(linesPerLevel int) level.Config {
	lc := level.DefaultConfig()
	lc.Enabled = c.LevelEnabled
	if c.LinesPerLevel > 0 {
		linesPerLevel = c.LinesPerLevel
	}
	lc.LinesPerLevel = level.ClampLinesPerLevel(linesPerLevel)
	return lc
}

// IsProduction は本番環境かどうかを返します。
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DefaultSettingsPath はホームディレクトリ直下の設定ファイルのパスを返します。
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tetris_settings.json"
	}
	return filepath.Join(home, ".tetris_settings.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s の形式が不正です: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
