package domain

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReferrer Role = "referrer"
)

// Claims representa o principal autenticado extraído do token JWT
type Claims struct {
	ReferrerID string `json:"referrer_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
