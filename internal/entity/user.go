package entity

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	RoleID          int64      `json:"role"`
	RoleName        string     `json:"roleName,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	IsDeleted       bool       `json:"isDeleted"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"roleName"`
}

type UserJwtInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  int64  `json:"role"`
}

type UserJwtClaims struct {
	User UserJwtInfo `json:"user"`
	jwt.RegisteredClaims
}
