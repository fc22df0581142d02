package sqlite

import (
	"context"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
)

type resultsRepo struct {
	q querier
}

func (r *resultsRepo) CreateResult(ctx context.Context, res domain.Result) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO results (id, user_id, score, created_at) VALUES (?, ?, ?, ?)`,
		res.ID, res.UserID, res.Score, res.CreatedAt,
	)
	return mapConflict(err)
}

func (r *resultsRepo) ListResultsByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, score, created_at
		FROM results
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Result
	for rows.Next() {
		var res domain.Result
		if err := rows.Scan(&res.ID, &res.UserID, &res.Score, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}
