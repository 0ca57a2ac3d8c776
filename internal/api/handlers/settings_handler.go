package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/settings"
)

// SettingsHandler は設定ファイルの読み書きを行うハンドラーです。
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler は新しいSettingsHandlerを作成します。
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSettings は現在の設定を返します。
// GET /api/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"settings": h.store.Load(),
	})
}

// UpdateSettings は設定を更新します。範囲外の値はクランプしてから保存します。
// ボディに含まれない項目は現在の値を引き継ぎます。
// PUT /api/protected/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	current := h.store.Load()
	if err := json.NewDecoder(r.Body).Decode(&current); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	updated := current.Clamp()
	if err := h.store.Save(updated); err != nil {
		log.Printf("[API] 設定保存エラー: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "設定の保存に失敗しました")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"settings": updated,
	})
}
