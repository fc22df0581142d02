package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
	"github.com/Cau1809/quiz-programming/internal/quiz/store"
	"github.com/Cau1809/quiz-programming/pkg/idx"
)

// ErrScoreOutOfRange reports a score below zero or above the number of
// questions currently available.
var ErrScoreOutOfRange = errors.New("service: score out of range")

// QuizService serves the question list and records finished quiz runs.
type QuizService struct {
	Store store.Store
}

// Questions returns every question in storage order. No shuffling and no
// pagination; the client walks the list as-is.
func (s *QuizService) Questions(ctx context.Context) ([]domain.Question, error) {
	return s.Store.Questions().ListQuestions(ctx)
}

// SubmitResult appends a quiz score for the given account. The score must
// lie within [0, question count]; count and insert run in one transaction so
// the bound reflects the question set at submission time.
func (s *QuizService) SubmitResult(ctx context.Context, userID string, score int) error {
	if userID == "" {
		return ErrInvalidInput
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		total, err := tx.Questions().CountQuestions(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if score < 0 || score > total {
			return ErrScoreOutOfRange
		}

		res := domain.Result{
			ID:        idx.New().String(),
			UserID:    userID,
			Score:     score,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Results().CreateResult(ctx, res); err != nil {
			return fmt.Errorf("create result: %w", err)
		}
		return nil
	})
}
