package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campspot-dev/campspot/internal/model"
)

// ErrUserNotFound is returned when a user lookup by identifier matches no
// row.  Handlers translate it into an HTTP 404.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when no user row matches a submitted
// email and password pair.  Handlers translate it into an HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepo provides access to the User table.
type UserRepo struct{ db *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// NewUser carries the caller-supplied fields of a user insert.  Birthdate
// passes through as text and is coerced by the store.
type NewUser struct {
	Firstname   string
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	UserTypeId  uint64
	Birthdate   string
	Gender      string
}

// ListAll returns every user with all columns, Password included.  The
// full listing predates any notion of credential hygiene and is kept
// unchanged; the per-user profile endpoint is the sanitized one.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT UserId, Firstname, Name, Email, Password, PhoneNumber, UserTypeId, Birthdate, Gender, CreatedAt FROM User`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserId, &u.Firstname, &u.Name, &u.Email, &u.Password,
			&u.PhoneNumber, &u.UserTypeId, &u.Birthdate, &u.Gender, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID returns one user's profile.  The Password column is excluded from
// the select list, so it can never leak through this projection.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.UserProfile, error) {
	const q = `SELECT UserId, Firstname, Name, Email, PhoneNumber, UserTypeId, Birthdate, Gender, CreatedAt FROM User WHERE UserId = ?`
	var u model.UserProfile
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.UserId, &u.Firstname, &u.Name, &u.Email,
		&u.PhoneNumber, &u.UserTypeId, &u.Birthdate, &u.Gender, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, ErrUserNotFound
	}
	if err != nil {
		return model.UserProfile{}, err
	}
	return u, nil
}

// Create inserts a new user.  Email uniqueness is enforced by the store
// schema; a duplicate surfaces as a generic store error.
func (r *UserRepo) Create(ctx context.Context, u NewUser) error {
	const q = `INSERT INTO User (Firstname, Name, Email, Password, PhoneNumber, UserTypeId, Birthdate, Gender)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		u.Firstname, u.Name, u.Email, u.Password, u.PhoneNumber, u.UserTypeId, u.Birthdate, u.Gender)
	return err
}

// Authenticate looks up the user row matching both email and password and
// returns its minimal projection.  The password is matched verbatim inside
// the query; the store holds opaque credential strings, not hashes.  No
// matching row yields ErrInvalidCredentials, whether the email is unknown
// or the password merely wrong.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.Credentials, error) {
	const q = `SELECT UserId, Email, UserTypeId FROM User WHERE Email = ? AND Password = ? LIMIT 1`
	var cred model.Credentials
	err := r.db.QueryRowContext(ctx, q, email, password).Scan(&cred.UserId, &cred.Email, &cred.UserTypeId)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Credentials{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.Credentials{}, err
	}
	return cred, nil
}
