package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models"
)

// parseMode はクエリパラメータ mode を読み取ります。省略時は tetris です。
func parseMode(r *http.Request) (models.GameMode, bool) {
	m := models.GameMode(r.URL.Query().Get("mode"))
	if m == "" {
		return models.ModeTetris, true
	}
	return m, m.Valid()
}

// pathUserID はパスパラメータ {userID} を返します。
func pathUserID(r *http.Request) string {
	return mux.Vars(r)["userID"]
}
