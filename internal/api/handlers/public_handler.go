package handlers

import (
	"log"
	"net/http"
	"time"
)

// PublicHandler は認証不要の公開エンドポイントを扱います。
type PublicHandler struct {
	startedAt time.Time
	version   string
}

// NewPublicHandler は新しい PublicHandler を作成します。
func NewPublicHandler(version string) *PublicHandler {
	return &PublicHandler{startedAt: time.Now(), version: version}
}

// Health はサーバーの稼働状態を返します。
// GET /api/public/health
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	log.Println("[API] Request to public endpoint: /api/public/health")
	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"version":        h.version,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}
