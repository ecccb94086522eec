package courses

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shipekarrohit/backend-project/apperror"
)

// CourseService provides course CRUD backed by postgres.
type CourseService struct {
	db *pgxpool.Pool
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *pgxpool.Pool) *CourseService {
	return &CourseService{db: db}
}

const courseColumns = `
	c.id, c.title, c.description, c.category, c.created_by, c.created_at, c.updated_at,
	u.id, u.name, u.email`

func scanCourse(row pgx.Row) (*Course, error) {
	var course Course
	var creator Creator
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.Category,
		&course.CreatedBy, &course.CreatedAt, &course.UpdatedAt,
		&creator.ID, &creator.Name, &creator.Email,
	)
	if err != nil {
		return nil, err
	}
	course.Creator = &creator
	return &course, nil
}

// Create inserts a course owned by userID and returns it with its creator
// embedded.
func (s *CourseService) Create(ctx context.Context, userID int64, req CreateCourseRequest) (*Course, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO courses (title, description, category, created_by)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		req.Title, req.Description, req.Category, userID).Scan(&id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create course", err)
	}
	return s.Get(ctx, id)
}

// List returns all courses with their creators, newest first.
func (s *CourseService) List(ctx context.Context) ([]Course, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses c
		JOIN users u ON u.id = c.created_by
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch courses", err)
	}
	defer rows.Close()

	var result []Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan course", err)
		}
		result = append(result, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read courses", err)
	}
	return result, nil
}

// Get returns a single course by id.
func (s *CourseService) Get(ctx context.Context, id int64) (*Course, error) {
	course, err := scanCourse(s.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses c
		JOIN users u ON u.id = c.created_by
		WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Course not found.", nil)
		}
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to fetch course %d", id), err)
	}
	return course, nil
}

// Update applies a partial update to a course. Only the creator may update;
// the ownership check is an explicit equality between the authenticated
// identity and the stored created_by.
func (s *CourseService) Update(ctx context.Context, id, userID int64, req UpdateCourseRequest) (*Course, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != userID {
		return nil, apperror.NewForbiddenError("You can only update your own courses.", nil)
	}

	title := existing.Title
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}
	description := existing.Description
	if req.Description != nil {
		description = req.Description
	}
	category := existing.Category
	if req.Category != nil && *req.Category != "" {
		category = req.Category
	}

	_, err = s.db.Exec(ctx,
		`UPDATE courses SET title = $1, description = $2, category = $3, updated_at = NOW()
		 WHERE id = $4`,
		title, description, category, id)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("failed to update course %d", id), err)
	}
	return s.Get(ctx, id)
}

// Delete removes a course. Same ownership rule as Update.
func (s *CourseService) Delete(ctx context.Context, id, userID int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatedBy != userID {
		return apperror.NewForbiddenError("You can only delete your own courses.", nil)
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return apperror.NewDatabaseError(fmt.Sprintf("failed to delete course %d", id), err)
	}
	return nil
}
