package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dwsetiawan/facility-auth/internal/entity"
	"github.com/dwsetiawan/facility-auth/internal/service"
	"github.com/dwsetiawan/facility-auth/pkg/logger"
)

type Service interface {
	Register(ctx context.Context, in service.RegisterInput) (entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.LoginResult, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (entity.User, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// @Summary Health check
// @Description Reports that the server is up
// @Tags auth
// @Produce json
// @Success 200 {string} string "ok"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok\n"))
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Role     string `json:"role"     validate:"required"`
}

type RegisterResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    entity.User `json:"data"`
}

// @Summary Register a user
// @Description Creates a user with a hashed password and a role reference
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New user"
// @Success 201 {object} RegisterResponse "User created"
// @Failure 400 {object} StatusResponse "Malformed request"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} StatusResponse "Internal error"
// @Router /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if fieldErrs := service.Validate(req); fieldErrs != nil {
		sendValidationErr(ctx, w, fieldErrs)
		return
	}

	roleID, err := strconv.ParseInt(req.Role, 10, 64)
	if err != nil {
		sendValidationErr(ctx, w, map[string][]string{"role": {service.MsgRoleInvalid}})
		return
	}

	user, err := h.s.Register(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   roleID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			sendValidationErr(ctx, w, map[string][]string{"email": {service.MsgEmailTaken}})
			return
		}

		if errors.Is(err, entity.ErrRoleNotFound) {
			sendValidationErr(ctx, w, map[string][]string{"role": {service.MsgRoleInvalid}})
			return
		}

		sendErr(ctx, w, http.StatusInternalServerError, err, "Could not create user")

		return
	}

	resp := RegisterResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	}

	sendJSON(ctx, w, http.StatusCreated, resp)
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success        bool           `json:"success"`
	Token          string         `json:"token"`
	UserID         int64          `json:"userId"`
	UserName       string         `json:"userName"`
	UserEmail      string         `json:"userEmail"`
	UserVerifiedAt *time.Time     `json:"userVerifiedAt"`
	Role           string         `json:"role"`
	MenuLevel      []entity.Grant `json:"menuLevel"`
}

// @Summary Log in
// @Description Verifies credentials, issues a token and returns the role's menu access list
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Logged in"
// @Failure 400 {object} StatusResponse "Invalid credentials"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} StatusResponse "Token issuance failed"
// @Router /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "auth")

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if fieldErrs := service.Validate(req); fieldErrs != nil {
		sendValidationErr(ctx, w, fieldErrs)
		return
	}

	result, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			sendErr(ctx, w, http.StatusBadRequest, err, "Login credentials are invalid.")
			return
		}

		sendErr(ctx, w, http.StatusInternalServerError, err, "Could not create token.")

		return
	}

	resp := LoginResponse{
		Success:        true,
		Token:          result.Token,
		UserID:         result.User.ID,
		UserName:       result.User.Name,
		UserEmail:      result.User.Email,
		UserVerifiedAt: result.User.EmailVerifiedAt,
		Role:           result.User.RoleName,
		MenuLevel:      result.Grants,
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// @Summary Log out
// @Description Invalidates the presented token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token to invalidate"
// @Success 200 {object} LogoutResponse "Logged out"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Failure 500 {object} StatusResponse "Token could not be invalidated"
// @Router /api/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	var req TokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if fieldErrs := service.Validate(req); fieldErrs != nil {
		sendValidationErr(ctx, w, fieldErrs)
		return
	}

	err = h.s.Logout(ctx, req.Token)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, "Sorry, user cannot be logged out")
		return
	}

	resp := LogoutResponse{
		Success: true,
		Message: "User has been logged out",
	}

	sendJSON(ctx, w, http.StatusOK, resp)
}

type GetUserResponse struct {
	User entity.User `json:"user"`
}

// @Summary Current user
// @Description Resolves a token to the user it was issued for
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token"
// @Success 200 {object} GetUserResponse "Authenticated user"
// @Failure 401 {object} StatusResponse "Token invalid or revoked"
// @Failure 422 {object} ValidationErrorResponse "Validation failed"
// @Router /api/get_user [post]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx = logger.SetLogType(ctx, "token")

	var req TokenRequest

	if r.Body != nil {
		// body is optional on GET; the token may come as a query param
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.Token == "" {
		req.Token = r.URL.Query().Get("token")
	}

	if fieldErrs := service.Validate(req); fieldErrs != nil {
		sendValidationErr(ctx, w, fieldErrs)
		return
	}

	user, err := h.s.CurrentUser(ctx, req.Token)
	if err != nil {
		sendErr(ctx, w, http.StatusUnauthorized, err, "Token is invalid or expired")
		return
	}

	resp := GetUserResponse{User: user}

	sendJSON(ctx, w, http.StatusOK, resp)
}
