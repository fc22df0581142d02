package sqlite

import (
	"context"
	"database/sql"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
)

type questionsRepo struct {
	q querier
}

// ListQuestions returns questions in table order (by id), which keeps the
// sequence stable across calls.
func (r *questionsRepo) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, question_text, option_a, option_b, option_c, option_d,
		       correct_option, explanation
		FROM questions
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Question
	for rows.Next() {
		var q domain.Question
		var explanation sql.NullString
		if err := rows.Scan(
			&q.ID, &q.QuestionText,
			&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.CorrectOption, &explanation,
		); err != nil {
			return nil, err
		}
		if explanation.Valid {
			q.Explanation = explanation.String
		}
		out = append(out, q)
	}

	return out, rows.Err()
}

func (r *questionsRepo) CountQuestions(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}
