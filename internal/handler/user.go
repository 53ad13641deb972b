package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/repository"
)

// UserHandler serves the user endpoints, including the login check.
type UserHandler struct {
	Users *repository.UserRepo
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// createUserReq mirrors the JSON body of a user creation request.
type createUserReq struct {
	Firstname   string `json:"firstname"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	UserTypeId  uint64 `json:"userTypeId"`
	Birthdate   string `json:"birthdate"`
	Gender      string `json:"gender"`
}

// loginReq mirrors the JSON body of a login request.
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetUsers returns all users with all columns.
func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch users", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns one user's profile.  The projection selected by the
// repository never includes the Password column.
func (h *UserHandler) GetUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	user, err := h.Users.GetByID(ctx, c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch user details", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser inserts a new user and confirms with a message.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	err := h.Users.Create(ctx, repository.NewUser{
		Firstname:   req.Firstname,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		UserTypeId:  req.UserTypeId,
		Birthdate:   req.Birthdate,
		Gender:      req.Gender,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add user", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User added successfully"})
}

// Login checks a submitted email and password against the store and
// returns the matched user's minimal projection.  There is no session
// token, hashing or rate limiting here; the check is a plain row match
// and a non-match is always the same 401 body, whether the email is
// unknown or only the password is wrong.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	cred, err := h.Users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, cred)
}
