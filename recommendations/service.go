// Package recommendations serves the placeholder recommendation endpoint:
// a hardcoded filter over recently created courses, structured so a real
// ranking model can replace the service later without touching the handler.
package recommendations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/courses"
)

const (
	// candidatePool is how many recent courses are considered.
	candidatePool = 10
	// maxRecommendations caps the returned list.
	maxRecommendations = 5
)

// Service computes course recommendations for a user.
type Service struct {
	db *pgxpool.Pool
}

// NewService creates a new recommendation Service.
func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// ForUser returns up to five courses not created by the given user. When
// every candidate was created by the user, the unfiltered head of the
// candidate list is returned instead, so the endpoint never answers with an
// empty list while courses exist.
func (s *Service) ForUser(ctx context.Context, userID int64) ([]courses.Course, error) {
	var exists bool
	if err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return nil, apperror.NewDatabaseError("failed to check user", err)
	}
	if !exists {
		return nil, apperror.NewNotFoundError("User not found.", nil)
	}

	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.title, c.description, c.category, c.created_by, c.created_at, c.updated_at,
		       u.id, u.name, u.email
		FROM courses c
		JOIN users u ON u.id = c.created_by
		ORDER BY c.created_at DESC
		LIMIT $1`, candidatePool)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch candidate courses", err)
	}
	defer rows.Close()

	var candidates []courses.Course
	for rows.Next() {
		var course courses.Course
		var creator courses.Creator
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Category,
			&course.CreatedBy, &course.CreatedAt, &course.UpdatedAt,
			&creator.ID, &creator.Name, &creator.Email,
		); err != nil {
			return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to scan course for user %d", userID), err)
		}
		course.Creator = &creator
		candidates = append(candidates, course)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read candidate courses", err)
	}

	return Select(candidates, userID), nil
}

// Select applies the recommendation rule to a candidate list: drop courses
// owned by userID, cap at five, and fall back to the unfiltered head when
// the filter removes everything.
func Select(candidates []courses.Course, userID int64) []courses.Course {
	recommended := make([]courses.Course, 0, len(candidates))
	for _, c := range candidates {
		if c.CreatedBy != userID {
			recommended = append(recommended, c)
		}
	}
	if len(recommended) == 0 {
		recommended = candidates
	}
	if len(recommended) > maxRecommendations {
		recommended = recommended[:maxRecommendations]
	}
	return recommended
}
