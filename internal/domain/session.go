package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifica uma sessão aberta com a senha compartilhada
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
