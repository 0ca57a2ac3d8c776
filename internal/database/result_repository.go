package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/progate-hackathon-strawberry-flavor/blockfall/internal/models"
)

// ResultRepository はゲーム結果関連のデータベース操作を定義するインターフェースです。
type ResultRepository interface {
	// CreateResult は新しいゲーム結果レコードを作成します
	CreateResult(ctx context.Context, userID string, req models.ResultRequest) (*models.Result, error)

	// GetTopResults はモードごとの上位N件の結果を取得します（ランキング用）
	GetTopResults(ctx context.Context, mode models.GameMode, limit int) ([]models.ResultResponse, error)

	// GetUserBestScore は指定したユーザーのモード内の最高スコアを取得します
	GetUserBestScore(ctx context.Context, userID string, mode models.GameMode) (*models.Result, error)

	// GetUserRanking は指定したユーザーのモード内のランキング順位を取得します
	GetUserRanking(ctx context.Context, userID string, mode models.GameMode) (*models.ResultResponse, error)
}

// resultRepositoryImpl はResultRepositoryインターフェースの実装です。
type resultRepositoryImpl struct {
	db *sql.DB
}

// NewResultRepository はResultRepositoryの新しいインスタンスを作成します。
func NewResultRepository(db *sql.DB) ResultRepository {
	return &resultRepositoryImpl{db: db}
}

// CreateResult は新しいゲーム結果レコードを作成します。
func (r *resultRepositoryImpl) CreateResult(ctx context.Context, userID string, req models.ResultRequest) (*models.Result, error) {
	result := &models.Result{
		ID:           uuid.New().String(),
		UserID:       userID,
		Mode:         req.Mode,
		Score:        req.Score,
		LinesCleared: req.LinesCleared,
		MaxChain:     req.MaxChain,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO game_results (id, user_id, mode, score, lines_cleared, max_chain, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ID, result.UserID, string(result.Mode), result.Score, result.LinesCleared, result.MaxChain, result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ゲーム結果レコードの作成に失敗しました: %w", err)
	}
	return result, nil
}

// GetTopResults はモードごとの上位N件の結果を取得します。
func (r *resultRepositoryImpl) GetTopResults(ctx context.Context, mode models.GameMode, limit int) ([]models.ResultResponse, error) {
	query := `
		SELECT
			id, user_id, mode, score, lines_cleared, max_chain, created_at,
			ROW_NUMBER() OVER (ORDER BY score DESC, created_at ASC) as rank
		FROM game_results
		WHERE mode = $1
		ORDER BY score DESC, created_at ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, string(mode), limit)
	if err != nil {
		return nil, fmt.Errorf("ゲーム結果取得に失敗しました: %w", err)
	}
	defer rows.Close()

	results := []models.ResultResponse{}
	for rows.Next() {
		var res models.ResultResponse
		var m string
		err := rows.Scan(&res.ID, &res.UserID, &m, &res.Score, &res.LinesCleared, &res.MaxChain, &res.CreatedAt, &res.Rank)
		if err != nil {
			return nil, fmt.Errorf("ゲーム結果データのスキャンに失敗しました: %w", err)
		}
		res.Mode = models.GameMode(m)
		results = append(results, res)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ゲーム結果取得中にエラーが発生しました: %w", err)
	}
	return results, nil
}

// GetUserBestScore は指定したユーザーの最高スコアを取得します。
// 記録がない場合は nil, nil を返します。
func (r *resultRepositoryImpl) GetUserBestScore(ctx context.Context, userID string, mode models.GameMode) (*models.Result, error) {
	query := `
		SELECT id, user_id, mode, score, lines_cleared, max_chain, created_at
		FROM game_results
		WHERE user_id = $1 AND mode = $2
		ORDER BY score DESC, created_at ASC
		LIMIT 1
	`

	var res models.Result
	var m string
	err := r.db.QueryRowContext(ctx, query, userID, string(mode)).
		Scan(&res.ID, &res.UserID, &m, &res.Score, &res.LinesCleared, &res.MaxChain, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // ユーザーのスコアが存在しない場合はnilを返す
	}
	if err != nil {
		return nil, fmt.Errorf("ユーザーの最高スコア取得に失敗しました: %w", err)
	}
	res.Mode = models.GameMode(m)
	return &res, nil
}

// GetUserRanking は指定したユーザーの現在のランキング順位を取得します。
func (r *resultRepositoryImpl) GetUserRanking(ctx context.Context, userID string, mode models.GameMode) (*models.ResultResponse, error) {
	best, err := r.GetUserBestScore(ctx, userID, mode)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, nil
	}

	// そのスコアより上の記録の数 + 1 が順位
	query := `
		SELECT COUNT(*) + 1 as rank
		FROM game_results
		WHERE mode = $1 AND (score > $2 OR (score = $2 AND created_at < $3))
	`

	var rank int
	if err := r.db.QueryRowContext(ctx, query, string(mode), best.Score, best.CreatedAt).Scan(&rank); err != nil {
		return nil, fmt.Errorf("ユーザーランキング順位の計算に失敗しました: %w", err)
	}

	return &models.ResultResponse{Result: *best, Rank: rank}, nil
}
