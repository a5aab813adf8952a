package handlers

import (
	"errors"
	"net/http"

	"server/internal/domain"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

// Signup creates an account. The role is always donor; promotion happens only
// through volunteer-application approval or admin action.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !a.decode(w, r, &req) {
		return
	}

	hash, err := a.Credentials.HashPassword(req.Password)
	if err != nil {
		a.internalError(w, err, "hash password failed")
		return
	}

	user, err := a.Users.Create(r.Context(), &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.UserRoleDonor,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmailTaken):
		a.error(w, http.StatusBadRequest, "User already exists")
		return
	default:
		a.internalError(w, err, "create user failed")
		return
	}

	token, err := a.Credentials.IssueToken(user.ID)
	if err != nil {
		a.internalError(w, err, "issue token failed")
		return
	}
	a.json(w, http.StatusOK, authResponse{User: toUserDTO(user), Token: token})
}

// Login verifies credentials and issues a fresh token. Unknown emails and bad
// passwords are indistinguishable to the caller.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		a.internalError(w, err, "lookup user failed")
		return
	}
	if !a.Credentials.VerifyPassword(req.Password, user.PasswordHash) {
		a.error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := a.Credentials.IssueToken(user.ID)
	if err != nil {
		a.internalError(w, err, "issue token failed")
		return
	}
	a.json(w, http.StatusOK, authResponse{User: toUserDTO(user), Token: token})
}

// Me returns the authenticated user's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		a.error(w, http.StatusUnauthorized, "No token provided")
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}
