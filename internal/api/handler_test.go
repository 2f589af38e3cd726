package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dwsetiawan/facility-auth/internal/api"
	"github.com/dwsetiawan/facility-auth/internal/entity"
	"github.com/dwsetiawan/facility-auth/internal/service"
)

type stubService struct {
	registerUser entity.User
	registerErr  error
	loginResult  *entity.LoginResult
	loginErr     error
	logoutErr    error
	currentUser  entity.User
	currentErr   error
}

func (s *stubService) Register(_ context.Context, _ service.RegisterInput) (entity.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubService) Login(_ context.Context, _, _ string) (*entity.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubService) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

func (s *stubService) CurrentUser(_ context.Context, _ string) (entity.User, error) {
	return s.currentUser, s.currentErr
}

func doRequest(t *testing.T, s api.Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := api.NewHandler(s)
	router := api.NewRouter(h, api.NewMiddleware())

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRegister_ValidationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"email":"d@x.com","password":"111111","role":"2"}`, "name"},
		{"bad email", `{"name":"DW","email":"nope","password":"111111","role":"2"}`, "email"},
		{"short password", `{"name":"DW","email":"d@x.com","password":"11111","role":"2"}`, "password"},
		{"long password", `{"name":"DW","email":"d@x.com","password":"` + strings.Repeat("1", 51) + `","role":"2"}`, "password"},
		{"missing role", `{"name":"DW","email":"d@x.com","password":"111111"}`, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(t, &stubService{}, http.MethodPost, "/api/register", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp api.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Contains(t, resp.Error, tt.field)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	s := &stubService{registerErr: entity.ErrAlreadyExists}

	rec := doRequest(t, s, http.MethodPost, "/api/register",
		`{"name":"DW","email":"d@x.com","password":"111111","role":"2"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"The email has already been taken."}, resp.Error["email"])
}

func TestRegister_NonNumericRole(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/register",
		`{"name":"DW","email":"d@x.com","password":"111111","role":"admin"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"The selected role is invalid."}, resp.Error["role"])
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	s := &stubService{registerUser: entity.User{
		ID:       1,
		Name:     "DW",
		Email:    "d@x.com",
		Password: "$2a$10$secret-hash",
		RoleID:   2,
	}}

	rec := doRequest(t, s, http.MethodPost, "/api/register",
		`{"name":"DW","email":"d@x.com","password":"111111","role":"2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "User created successfully", resp.Message)
	require.Equal(t, int64(1), resp.Data.ID)

	require.NotContains(t, rec.Body.String(), "secret-hash", "response must not carry the password hash")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	verifiedAt := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	s := &stubService{loginResult: &entity.LoginResult{
		Token: "issued-token",
		User: entity.User{
			ID:              1,
			Name:            "DW",
			Email:           "d@x.com",
			RoleName:        "operator",
			EmailVerifiedAt: &verifiedAt,
		},
		Grants: []entity.Grant{
			{ID: 1, MenuName: "Dashboard", IsActive: true, RoleName: "operator", AccessName: "read", TimeLimit: 60},
		},
	}}

	rec := doRequest(t, s, http.MethodPost, "/api/login", `{"email":"d@x.com","password":"111111"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "issued-token", resp.Token)
	require.Equal(t, int64(1), resp.UserID)
	require.Equal(t, "DW", resp.UserName)
	require.Equal(t, "d@x.com", resp.UserEmail)
	require.Equal(t, "operator", resp.Role)
	require.Len(t, resp.MenuLevel, 1)
	require.Equal(t, "Dashboard", resp.MenuLevel[0].MenuName)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	s := &stubService{loginErr: entity.ErrInvalidCredentials}

	rec := doRequest(t, s, http.MethodPost, "/api/login", `{"email":"d@x.com","password":"wrong"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Login credentials are invalid.", resp.Message)
}

func TestLogin_IssuanceFailure(t *testing.T) {
	t.Parallel()

	s := &stubService{loginErr: entity.ErrTokenIssue}

	rec := doRequest(t, s, http.MethodPost, "/api/login", `{"email":"d@x.com","password":"111111"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Contains(t, rec.Body.String(), "Could not create token.")
	require.NotContains(t, rec.Body.String(), "111111", "credentials must never be echoed")
}

func TestLogin_ValidationFailure(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/login", `{"email":"nope"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "email")
	require.Contains(t, resp.Error, "password")
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/logout", `{"token":"some-token"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.LogoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "User has been logged out", resp.Message)
}

func TestLogout_Failure(t *testing.T) {
	t.Parallel()

	s := &stubService{logoutErr: entity.ErrTokenRevoked}

	rec := doRequest(t, s, http.MethodPost, "/api/logout", `{"token":"stale-token"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Contains(t, rec.Body.String(), "Sorry, user cannot be logged out")
}

func TestLogout_MissingToken(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/logout", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"The token field is required."}, resp.Error["token"])
}

func TestGetUser_Success(t *testing.T) {
	t.Parallel()

	s := &stubService{currentUser: entity.User{ID: 1, Name: "DW", Email: "d@x.com", RoleName: "operator"}}

	rec := doRequest(t, s, http.MethodPost, "/api/get_user", `{"token":"some-token"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.GetUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "d@x.com", resp.User.Email)
}

func TestGetUser_TokenFromQueryParam(t *testing.T) {
	t.Parallel()

	s := &stubService{currentUser: entity.User{ID: 1, Email: "d@x.com"}}

	rec := doRequest(t, s, http.MethodGet, "/api/get_user?token=some-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_MissingToken(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/get_user", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp api.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error, "token")
}

func TestGetUser_RevokedToken(t *testing.T) {
	t.Parallel()

	s := &stubService{currentErr: entity.ErrTokenRevoked}

	rec := doRequest(t, s, http.MethodPost, "/api/get_user", `{"token":"revoked"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
