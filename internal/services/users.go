// Package services bridges user input to the validation schema and the
// record store, and decides flow-level outcomes: registration, login,
// profile editing, deletion and session handling.
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"enrollform/internal/logging"
	"enrollform/internal/models"
	"enrollform/internal/store"
	"enrollform/internal/validation"
)

// RegisterStatus says how a successful registration submit resolved.
type RegisterStatus int

const (
	// RegisterCreated: a new record was stored and the session set.
	RegisterCreated RegisterStatus = iota
	// RegisterReturning: the submitted identity matched an existing
	// record in full, so the submit was treated as a login.
	RegisterReturning
)

// RegisterResult carries the outcome of a successful registration.
type RegisterResult struct {
	Status RegisterStatus
	User   models.User
}

// UserService is the flow-level API consumed by the presentation layer.
//
// Validation failures are returned as validation.FieldErrors (an error
// value); identity conflicts as the sentinel errors in this package.
type UserService interface {
	Register(ctx context.Context, candidate models.User) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Profiles(ctx context.Context) []models.User
	ActiveProfile(ctx context.Context) (*models.User, bool)
	UpdateProfile(ctx context.Context, edited models.User) (*models.User, error)
	DeleteProfile(ctx context.Context, email string) error
}

type userService struct {
	store     *store.Store
	validator *validation.Validator
	log       logging.Logger
}

func NewUserService(st *store.Store, v *validation.Validator, log logging.Logger) UserService {
	return &userService{store: st, validator: v, log: log.With("component", "users")}
}

// normalizeEmail applies the system-wide email normalization: trim and
// lowercase, making lookups effectively case-insensitive even though
// the store matches exactly.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the candidate and arbitrates it against stored
// records. The historically conflated "email exists" branch is split
// into explicitly named outcomes:
//
//   - no record with this email      -> create + set session (RegisterCreated)
//   - record exists, name differs    -> ErrEmailInUse
//   - name matches, password differs -> ErrWrongPassword
//   - name and password both match   -> returning user: set session
//     (RegisterReturning), no record mutation
func (s *userService) Register(ctx context.Context, candidate models.User) (*RegisterResult, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Email = normalizeEmail(candidate.Email)

	if errs := s.validator.ValidateUser(candidate); errs != nil {
		return nil, errs
	}

	existing, found := s.store.FindByEmail(ctx, candidate.Email)
	if !found {
		candidate.ID = uuid.NewString()
		if _, err := s.store.CreateUser(ctx, candidate); err != nil {
			return nil, err
		}
		if err := s.store.SetActiveUser(ctx, candidate.Email); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "user registered", "email", candidate.Email)
		return &RegisterResult{Status: RegisterCreated, User: candidate}, nil
	}

	if existing.Name != candidate.Name {
		return nil, ErrEmailInUse
	}
	if existing.Password != candidate.Password {
		return nil, ErrWrongPassword
	}

	if err := s.store.SetActiveUser(ctx, existing.Email); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "returning user recognized at registration", "email", existing.Email)
	return &RegisterResult{Status: RegisterReturning, User: existing}, nil
}

// Login authenticates by email and password only, sets the session on
// success and returns the matched record.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	u, found := s.store.FindByEmail(ctx, email)
	if !found {
		return nil, ErrNotFound
	}
	if u.Password != password {
		return nil, ErrWrongPassword
	}

	if err := s.store.SetActiveUser(ctx, email); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user logged in", "email", email)
	return &u, nil
}

// Logout clears the session pointer.
func (s *userService) Logout(ctx context.Context) error {
	return s.store.ClearActiveUser(ctx)
}

// Profiles returns all stored records for the listing screen.
func (s *userService) Profiles(ctx context.Context) []models.User {
	return s.store.ListUsers(ctx)
}

// ActiveProfile resolves the session to a live record.
func (s *userService) ActiveProfile(ctx context.Context) (*models.User, bool) {
	u, ok := s.store.ActiveUser(ctx)
	if !ok {
		return nil, false
	}
	return &u, true
}

// UpdateProfile overlays the edited fields on the active record,
// re-validates the merged result against the full schema and replaces
// the stored record wholesale. The session is re-pointed afterwards so
// it stays consistent with the record identity.
func (s *userService) UpdateProfile(ctx context.Context, edited models.User) (*models.User, error) {
	current, ok := s.store.ActiveUser(ctx)
	if !ok {
		return nil, ErrNoActiveUser
	}

	merged := current.Merge(edited)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Email = normalizeEmail(merged.Email)

	if errs := s.validator.ValidateUser(merged); errs != nil {
		return nil, errs
	}

	outcome, err := s.store.UpdateUser(ctx, merged)
	if err != nil {
		return nil, err
	}
	if outcome == store.UpdateNotFound {
		// Happens when the edit changed the email: updates match by
		// email and never insert, so there is nothing to replace.
		return nil, ErrNotFound
	}

	if err := s.store.SetActiveUser(ctx, merged.Email); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "profile updated", "email", merged.Email)
	return &merged, nil
}

// DeleteProfile removes the record for email and clears the session if
// it pointed at the deleted record.
func (s *userService) DeleteProfile(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	outcome, err := s.store.DeleteUser(ctx, email)
	if err != nil {
		return err
	}
	if outcome == store.DeleteNotFound {
		return ErrNotFound
	}

	if active, ok := s.store.ActiveEmail(ctx); ok && active == email {
		if err := s.store.ClearActiveUser(ctx); err != nil {
			return err
		}
	}
	s.log.Info(ctx, "user deleted", "email", email)
	return nil
}
