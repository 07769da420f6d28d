// Package store implements the durable record store: a mapping from
// email to user record plus a single active-session pointer, laid out
// as three key-value entries in the local storage substrate.
//
// Layout:
//
//	users      — JSON array of user records, insertion order preserved
//	activeUser — raw email bytes of the session pointer, absent when cleared
//	emails     — JSON array of known emails; written on create, never read
//
// Reads never fail: corrupt or unreadable stored state collapses to
// "empty"/"absent" and is logged. Mutations report storage failures as
// errors and a typed outcome saying what actually happened.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"enrollform/internal/dbx"
	"enrollform/internal/logging"
	"enrollform/internal/models"
	"enrollform/internal/repositories/kv"
)

const (
	usersKey      = "users"
	activeUserKey = "activeUser"
	emailsKey     = "emails"
)

// CreateOutcome reports what CreateUser did.
type CreateOutcome int

const (
	Created CreateOutcome = iota
	AlreadyExists
)

func (o CreateOutcome) String() string {
	if o == Created {
		return "created"
	}
	return "already exists"
}

// UpdateOutcome reports what UpdateUser did.
type UpdateOutcome int

const (
	Updated UpdateOutcome = iota
	UpdateNotFound
)

// DeleteOutcome reports what DeleteUser did.
type DeleteOutcome int

const (
	Deleted DeleteOutcome = iota
	DeleteNotFound
)

// Store owns the durable representation of user records. Every value it
// returns is a detached copy; changes only persist through UpdateUser.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "store")}
}

// ListUsers returns all stored records in insertion order. It never
// fails: missing, unreadable or corrupt stored state reads as empty.
func (s *Store) ListUsers(ctx context.Context) []models.User {
	return s.readUsers(ctx, kv.NewSQLiteRepository(s.db))
}

// FindByEmail returns the record whose stored email exactly matches
// email. Callers are expected to lowercase beforehand; the match here
// is case-sensitive.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, bool) {
	for _, u := range s.ListUsers(ctx) {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser appends u unless a record with the same email already
// exists; the first record wins and the outcome reports which case
// happened. On creation the email is also appended to the known-email
// index.
func (s *Store) CreateUser(ctx context.Context, u models.User) (CreateOutcome, error) {
	outcome := AlreadyExists
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users := s.readUsers(ctx, repo)
		for _, existing := range users {
			if existing.Email == u.Email {
				return nil
			}
		}

		if err := s.writeUsers(ctx, repo, append(users, u)); err != nil {
			return err
		}
		if err := s.appendEmail(ctx, repo, u.Email); err != nil {
			return err
		}
		outcome = Created
		return nil
	})
	if err != nil {
		return AlreadyExists, fmt.Errorf("create user: %w", err)
	}
	return outcome, nil
}

// UpdateUser replaces, wholesale, the stored record whose email matches
// u.Email. It never inserts: a missing record reports UpdateNotFound.
func (s *Store) UpdateUser(ctx context.Context, u models.User) (UpdateOutcome, error) {
	outcome := UpdateNotFound
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users := s.readUsers(ctx, repo)
		for i, existing := range users {
			if existing.Email == u.Email {
				users[i] = u
				outcome = Updated
				return s.writeUsers(ctx, repo, users)
			}
		}
		return nil
	})
	if err != nil {
		return UpdateNotFound, fmt.Errorf("update user: %w", err)
	}
	return outcome, nil
}

// DeleteUser removes the record matching email. It does not touch the
// session pointer; clearing a dangling session is the caller's concern.
func (s *Store) DeleteUser(ctx context.Context, email string) (DeleteOutcome, error) {
	outcome := DeleteNotFound
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		users := s.readUsers(ctx, repo)
		kept := users[:0]
		for _, existing := range users {
			if existing.Email == email {
				outcome = Deleted
				continue
			}
			kept = append(kept, existing)
		}
		if outcome == DeleteNotFound {
			return nil
		}
		return s.writeUsers(ctx, repo, kept)
	})
	if err != nil {
		return DeleteNotFound, fmt.Errorf("delete user: %w", err)
	}
	return outcome, nil
}

// SetActiveUser overwrites the session pointer with email.
func (s *Store) SetActiveUser(ctx context.Context, email string) error {
	repo := kv.NewSQLiteRepository(s.db)
	if err := repo.Set(ctx, activeUserKey, []byte(email)); err != nil {
		return fmt.Errorf("set active user: %w", err)
	}
	return nil
}

// ClearActiveUser removes the session pointer.
func (s *Store) ClearActiveUser(ctx context.Context) error {
	repo := kv.NewSQLiteRepository(s.db)
	if err := repo.Delete(ctx, activeUserKey); err != nil {
		return fmt.Errorf("clear active user: %w", err)
	}
	return nil
}

// ActiveEmail returns the raw session pointer without resolving it.
func (s *Store) ActiveEmail(ctx context.Context) (string, bool) {
	repo := kv.NewSQLiteRepository(s.db)
	value, err := repo.Get(ctx, activeUserKey)
	if err != nil {
		s.log.Warn(ctx, "active user pointer unreadable, treating as absent", "err", err)
		return "", false
	}
	if len(value) == 0 {
		return "", false
	}
	return string(value), true
}

// ActiveUser resolves the session pointer to a live record. A missing
// pointer, or a pointer left dangling by a deletion, reads as "no
// active user".
func (s *Store) ActiveUser(ctx context.Context) (models.User, bool) {
	email, ok := s.ActiveEmail(ctx)
	if !ok {
		return models.User{}, false
	}
	return s.FindByEmail(ctx, email)
}

// KnownEmails returns the write-only email index. Nothing in the
// application consults it; it exists to keep the stored layout
// compatible with what earlier versions wrote.
func (s *Store) KnownEmails(ctx context.Context) []string {
	repo := kv.NewSQLiteRepository(s.db)
	value, err := repo.Get(ctx, emailsKey)
	if err != nil || len(value) == 0 {
		return nil
	}
	var emails []string
	if err := json.Unmarshal(value, &emails); err != nil {
		s.log.Warn(ctx, "email index corrupt, treating as empty", "err", err)
		return nil
	}
	return emails
}

func (s *Store) readUsers(ctx context.Context, repo kv.Repository) []models.User {
	value, err := repo.Get(ctx, usersKey)
	if err != nil {
		s.log.Warn(ctx, "stored users unreadable, treating as empty", "err", err)
		return nil
	}
	if len(value) == 0 {
		return nil
	}

	var users []models.User
	if err := json.Unmarshal(value, &users); err != nil {
		s.log.Warn(ctx, "stored users corrupt, treating as empty", "err", err)
		return nil
	}
	return users
}

func (s *Store) writeUsers(ctx context.Context, repo kv.Repository, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return repo.Set(ctx, usersKey, data)
}

func (s *Store) appendEmail(ctx context.Context, repo kv.Repository, email string) error {
	var emails []string
	value, err := repo.Get(ctx, emailsKey)
	if err == nil && len(value) > 0 {
		if uerr := json.Unmarshal(value, &emails); uerr != nil {
			s.log.Warn(ctx, "email index corrupt, rebuilding", "err", uerr)
			emails = nil
		}
	}

	for _, e := range emails {
		if e == email {
			return nil
		}
	}

	data, err := json.Marshal(append(emails, email))
	if err != nil {
		return fmt.Errorf("marshal emails: %w", err)
	}
	return repo.Set(ctx, emailsKey, data)
}
