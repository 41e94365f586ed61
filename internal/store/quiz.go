package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"skinquiz/internal/models"
)

const (
	// Single conditional statement so concurrent saves for the same user
	// cannot race into duplicate rows or lost updates.
	sqlUpsertQuizResult = `INSERT INTO quiz_results (user_id, skin_type, concerns, allergies, routine_level, notes, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   skin_type = excluded.skin_type,
		   concerns = excluded.concerns,
		   allergies = excluded.allergies,
		   routine_level = excluded.routine_level,
		   notes = excluded.notes,
		   recommendations = excluded.recommendations,
		   created_at = CURRENT_TIMESTAMP`

	sqlFindQuizResultByUserID = `SELECT user_id, skin_type, concerns, allergies, routine_level, notes, recommendations, created_at
		 FROM quiz_results
		 WHERE user_id = $1`
)

// UpsertQuizResult writes the latest quiz result for result.UserID,
// replacing every field and refreshing created_at when a row already
// exists. The caller never learns whether this was an insert or update.
func (s *Store) UpsertQuizResult(ctx context.Context, result models.QuizResult) error {
	concerns, err := encodeList(result.Concerns)
	if err != nil {
		return err
	}
	allergies, err := encodeList(result.Allergies)
	if err != nil {
		return err
	}
	recommendations, err := encodeList(result.Recommendations)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, sqlUpsertQuizResult,
		result.UserID, result.SkinType, concerns, allergies,
		result.RoutineLevel, result.Notes, recommendations,
	)
	return err
}

// FindQuizResultByUserID returns the stored quiz result for a user, or
// ErrNotFound when the user has not taken the quiz yet.
func (s *Store) FindQuizResultByUserID(ctx context.Context, userID int) (*models.QuizResult, error) {
	var (
		result          models.QuizResult
		skinType        sql.NullString
		concerns        sql.NullString
		allergies       sql.NullString
		routineLevel    sql.NullString
		notes           sql.NullString
		recommendations sql.NullString
	)

	err := s.db.QueryRowContext(ctx, sqlFindQuizResultByUserID, userID).Scan(
		&result.UserID, &skinType, &concerns, &allergies,
		&routineLevel, &notes, &recommendations, &result.CreatedAt,
	)
	if err != nil {
		return nil, translateLookupErr(err)
	}

	result.SkinType = skinType.String
	result.RoutineLevel = routineLevel.String
	result.Notes = notes.String
	if result.Concerns, err = decodeList(concerns.String); err != nil {
		return nil, fmt.Errorf("decode concerns for user %d: %w", userID, err)
	}
	if result.Allergies, err = decodeList(allergies.String); err != nil {
		return nil, fmt.Errorf("decode allergies for user %d: %w", userID, err)
	}
	if result.Recommendations, err = decodeList(recommendations.String); err != nil {
		return nil, fmt.Errorf("decode recommendations for user %d: %w", userID, err)
	}
	return &result, nil
}

// encodeList stores sequence fields as JSON text, the same column format
// the pre-existing data uses. A nil slice encodes as "[]", not "null".
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeList tolerates NULL and empty columns, returning an empty slice.
func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
