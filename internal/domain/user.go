package domain

import (
	"context"
	"time"
)

// Account types
const (
	UserTypeEmployer  = "employer"
	UserTypeApplicant = "applicant"
)

// User is persisted exactly in this JSON shape inside the users collection.
// Password is stored and compared verbatim; see DESIGN.md for the rationale
// behind keeping that behavior.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Company   string    `json:"company"` // required for employers, empty otherwise
	CreatedAt time.Time `json:"createdAt"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	// ReplaceAll persists the given slice as the whole users collection.
	ReplaceAll(ctx context.Context, users []User) error
	// GetByEmail matches by exact, case-sensitive string equality.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Create assigns a fresh ID and creation timestamp, appends the user to
	// the collection and persists it. Email uniqueness is the auth flow's
	// job, not the repository's.
	Create(ctx context.Context, user *User) error
	// ValidateCredentials returns the first user whose email and password
	// both match exactly, ErrNotFound otherwise.
	ValidateCredentials(ctx context.Context, email, password string) (*User, error)
}

// SessionRepository manages the single current-user slot. A full copy of
// the user record is stored, not just an id.
type SessionRepository interface {
	// Current returns the session user, ErrNotFound when unauthenticated.
	Current(ctx context.Context) (*User, error)
	Set(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
	Authenticated(ctx context.Context) (bool, error)
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Company  string `json:"company"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*User, error)
	// Register creates the account and immediately establishes the session.
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
}
