package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/api/middleware"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models/level"
)

// GameHandler はゲームのルールに関する読み取り専用のエンドポイントを提供します。
type GameHandler struct {
	levelConfig level.Config
}

// NewGameHandler は新しい GameHandler インスタンスを作成します。
//
// Parameters:
//   cfg : サーバーが使うレベル設定
func NewGameHandler(cfg level.Config) *GameHandler {
	return &GameHandler{levelConfig: cfg}
}

// ExtractUserIDFromContext はリクエストのコンテキストからユーザーIDを抽出します。
func ExtractUserIDFromContext(r *http.Request) (string, error) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || userID == "" {
		return "", fmt.Errorf("ユーザーIDがコンテキストに見つかりません")
	}
	return userID, nil
}

// WriteErrorResponse はエラーレスポンスをJSON形式で書き込みます。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WriteJSONResponse はJSONレスポンスを書き込みます。
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// LevelResponse は累計ライン数に対するレベルと落下間隔です。
type LevelResponse struct {
	Lines          int     `json:"lines"`
	Level          int     `json:"level"`
	Enabled        bool    `json:"enabled"`
	LinesPerLevel  int     `json:"lines_per_level"`
	FallIntervalMS float64 `json:"fall_interval_ms"`
	SoftDropMS     float64 `json:"soft_drop_ms"`
}

// GetLevel は累計ライン数からレベルと落下間隔を計算して返します。
// GET /api/level?lines=25&lines_per_level=5
func (h *GameHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	lines := 0
	if v := r.URL.Query().Get("lines"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteErrorResponse(w, http.StatusBadRequest, "linesは0以上の整数である必要があります")
			return
		}
		lines = n
	}

	cfg := h.levelConfig
	if v := r.URL.Query().Get("lines_per_level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "lines_per_levelは整数である必要があります")
			return
		}
		cfg.LinesPerLevel = level.ClampLinesPerLevel(n)
	}

	lv := cfg.ForLines(lines)
	interval := cfg.FallInterval(lv)
	if !cfg.Enabled {
		interval = cfg.BaseInterval
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"level": LevelResponse{
			Lines:          lines,
			Level:          lv,
			Enabled:        cfg.Enabled,
			LinesPerLevel:  cfg.LinesPerLevel,
			FallIntervalMS: float64(interval.Microseconds()) / 1000,
			SoftDropMS:     float64(cfg.SoftDrop.Microseconds()) / 1000,
		},
	})
}

// GetModes は遊べるゲームモードの一覧を返します。
// GET /api/modes
func (h *GameHandler) GetModes(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"modes":   []models.GameMode{models.ModeTetris, models.ModePuyo},
	})
}
