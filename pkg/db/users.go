package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfigueredo/hearth/pkg/device"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore provides user account operations.
type UserStore interface {
	Get(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Create inserts the user and their starter device set in one
	// transaction.
	Create(ctx context.Context, u *User) error
}

// Users returns a UserStore for this database.
func (db *DB) Users() UserStore {
	return &userStore{db: db}
}

type userStore struct {
	db *DB
}

func (s *userStore) Get(ctx context.Context, id string) (*User, error) {
	u := &User{}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	return u, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	return u, nil
}

func (s *userStore) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	// Refuse duplicates up front for a clean sentinel error
	if _, err := s.GetByUsername(ctx, u.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	return s.db.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, username, password_hash)
			VALUES (?, ?, ?)
		`, u.ID, u.Username, u.PasswordHash); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		// New accounts start with the fixed device set
		for _, d := range device.StarterDevices(u.ID) {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO devices (id, owner_id, name, category, state)
				VALUES (?, ?, ?, ?, ?)
			`, d.ID, d.OwnerID, d.Name, d.Category, d.State); err != nil {
				return fmt.Errorf("failed to create starter device %q: %w", d.Name, err)
			}
		}

		return nil
	})
}
