package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/database"
	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models"
)

const (
	defaultResultLimit = 50
	maxResultLimit     = 100
)

// ResultHandler はゲーム結果関連のハンドラーを管理する構造体です。
type ResultHandler struct {
	resultRepo database.ResultRepository
}

// NewResultHandler は新しいResultHandlerインスタンスを作成します。
func NewResultHandler(resultRepo database.ResultRepository) *ResultHandler {
	return &ResultHandler{
		resultRepo: resultRepo,
	}
}

// GetTopResults は上位ランキングを取得するハンドラーです。
// GET /api/results?mode=puyo&limit=50
func (h *ResultHandler) GetTopResults(w http.ResponseWriter, r *http.Request) {
	mode, ok := parseMode(r)
	if !ok {
		WriteErrorResponse(w, http.StatusBadRequest, "modeはtetrisまたはpuyoである必要があります")
		return
	}

	// limitパラメータを取得（デフォルト50、不正な値は無視）
	limit := defaultResultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= maxResultLimit {
			limit = parsed
		}
	}

	results, err := h.resultRepo.GetTopResults(r.Context(), mode, limit)
	if err != nil {
		log.Printf("[API] ゲーム結果取得エラー: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "ゲーム結果取得に失敗しました")
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"mode":    mode,
		"results": results,
	})
}

// PostResult は終了したゲームの結果を保存するハンドラーです。
// ユーザーIDは認証ミドルウェアがコンテキストに設定したものを使います。
// POST /api/protected/results
func (h *ResultHandler) PostResult(w http.ResponseWriter, r *http.Request) {
	userID, err := ExtractUserIDFromContext(r)
	if err != nil {
		WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req models.ResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "無効なリクエストボディです")
		return
	}

	// バリデーション
	if !req.Mode.Valid() {
		WriteErrorResponse(w, http.StatusBadRequest, "modeはtetrisまたはpuyoである必要があります")
		return
	}
	if req.Score < 0 || req.LinesCleared < 0 || req.MaxChain < 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "スコアは0以上である必要があります")
		return
	}

	result, err := h.resultRepo.CreateResult(r.Context(), userID, req)
	if err != nil {
		log.Printf("[API] スコア保存エラー: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "スコア保存に失敗しました")
		return
	}

	WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

// GetUserResult は指定したユーザーのランキングを取得するハンドラーです。
// GET /api/results/user/{userID}?mode=tetris
func (h *ResultHandler) GetUserResult(w http.ResponseWriter, r *http.Request) {
	userID := pathUserID(r)
	if userID == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "user_idが指定されていません")
		return
	}
	mode, ok := parseMode(r)
	if !ok {
		WriteErrorResponse(w, http.StatusBadRequest, "modeはtetrisまたはpuyoである必要があります")
		return
	}

	userResult, err := h.resultRepo.GetUserRanking(r.Context(), userID, mode)
	if err != nil {
		log.Printf("[API] ユーザー結果取得エラー: %v", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "ユーザー結果取得に失敗しました")
		return
	}

	if userResult == nil {
		WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"result":  nil,
			"message": "ユーザーのスコアが見つかりません",
		})
		return
	}

	WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  userResult,
	})
}
