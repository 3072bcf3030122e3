package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"bookreviews/internal/auth"
	"bookreviews/internal/entity"
	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"
)

type AuthHandler struct {
	users    usecase.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(users usecase.UserRepository, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, tokenTTL: tokenTTL}
}

type signupReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body signupReq true "Signup data"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, usecase.Validation("Invalid request body"))
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if messages := ValidateStruct(req); len(messages) > 0 {
		Error(w, r, usecase.Validation(messages...))
		return
	}

	if _, err := h.users.GetByEmail(r.Context(), req.Email); err == nil {
		Error(w, r, usecase.Conflict("User already exists"))
		return
	} else if !usecase.IsKind(err, usecase.KindNotFound) {
		Error(w, r, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		Error(w, r, err)
		return
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	// The unique constraints on email and username stay authoritative even
	// when two signups race past the existence check above.
	if err := h.users.Create(r.Context(), user); err != nil {
		Error(w, r, err)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    token,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Authenticate user and get token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, usecase.Validation("Invalid request body"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if messages := ValidateStruct(req); len(messages) > 0 {
		Error(w, r, usecase.Validation(messages...))
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		// One message for both cases so the response does not leak
		// whether the email is registered.
		Error(w, r, usecase.Unauthorized("Invalid email or password"))
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    token,
	})
}

// @Summary Get the caller's profile
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		Error(w, r, usecase.Unauthorized("Not authorized"))
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccess(w, user)
}
