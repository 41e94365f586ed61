// Package store is the persistence layer for users and quiz results.
// All SQL is explicit; uniqueness and upsert guarantees live in the
// database constraints, never in application-level check-then-act.
package store

import (
	"context"
	"database/sql"

	"skinquiz/internal/models"
)

// Store wraps a *sql.DB handle. It is safe for concurrent use and is
// passed explicitly into handlers rather than held as a package global.
type Store struct {
	db *sql.DB
}

// New returns a Store backed by db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for lifecycle management in main.
func (s *Store) DB() *sql.DB { return s.db }

// CreateUserParams carries the already-normalized, already-hashed inputs
// for a registration. Email must be trimmed and lower-cased by the caller.
type CreateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
}

const (
	sqlInsertUser = `INSERT INTO users (first_name, last_name, email, phone, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	sqlFindUserByCredentials = `SELECT id, first_name, last_name, email, phone, created_at
		 FROM users
		 WHERE email = $1 AND password = $2`

	sqlFindUserByID = `SELECT id, first_name, last_name, email, phone, created_at
		 FROM users
		 WHERE id = $1`

	sqlListUsers = `SELECT id, first_name, last_name, email, phone, created_at
		 FROM users
		 ORDER BY id`
)

// CreateUser inserts a user and returns the database-assigned id.
// Returns ErrDuplicateEmail when the email unique index rejects the row;
// concurrent registrations with the same email cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, sqlInsertUser,
		params.FirstName, params.LastName, params.Email, params.Phone, params.PasswordHash,
	).Scan(&id)
	if err != nil {
		return 0, translateUserInsertErr(err)
	}
	return id, nil
}

// FindUserByCredentials returns the user whose email and stored digest
// both match exactly. Returns ErrNotFound for a wrong email or a wrong
// password alike; the two cases are indistinguishable by design.
func (s *Store) FindUserByCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, sqlFindUserByCredentials, email, passwordHash))
}

// FindUserByID returns a user by primary key, or ErrNotFound.
func (s *Store) FindUserByID(ctx context.Context, id int) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, sqlFindUserByID, id))
}

// ListUsers returns every user in insertion (id) order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, sqlListUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CreatedAt)
	if err != nil {
		return nil, translateLookupErr(err)
	}
	return &u, nil
}
