package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/shipekarrohit/backend-project/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// AuthService provides registration, login and profile lookups. Dependencies
// are injected explicitly at construction; the pool and token service are
// created once in main and reused read-only.
type AuthService struct {
	db     *pgxpool.Pool
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *pgxpool.Pool, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password and issues a
// token for the fresh identity. A duplicate email surfaces as a conflict;
// the store's uniqueness constraint is the arbiter when two registrations
// race.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	role := req.Role
	if role == "" {
		role = RoleStudent
	}
	if !role.Valid() {
		return nil, "", apperror.NewValidationError(fmt.Sprintf("invalid role %q", role), nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		Role:           role,
	}

	query := `INSERT INTO users (name, email, password, role)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`
	err = s.db.QueryRow(ctx, query, user.Name, user.Email, user.HashedPassword, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, "", apperror.NewConflictError("User with this email already exists.", nil)
		}
		return nil, "", apperror.NewDatabaseError("failed to create user", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to issue token", err)
	}
	return user, token, nil
}

// Login verifies email/password credentials and issues a token. An unknown
// email and a wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.findUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperror.NewAuthError("Invalid email or password.", nil)
		}
		return nil, "", apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, "", apperror.NewAuthError("Invalid email or password.", nil)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to issue token", err)
	}
	return user, token, nil
}

// GetProfile returns the caller's own user record.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*User, error) {
	return s.FindUserByID(ctx, userID)
}

// FindUserByID resolves a user by primary key. It backs the Authenticate
// middleware's liveness check, satisfying PrincipalResolver.
func (s *AuthService) FindUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `SELECT id, name, email, password, role, created_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return &user, nil
}

func (s *AuthService) findUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, name, email, password, role, created_at FROM users WHERE email = $1`
	err := s.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
