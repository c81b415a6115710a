package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"legalclub/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

type jwtMaker struct {
	secret []byte
}

// NewJWTMaker returns a combined TokenIssuer/TokenVerifier that signs
// HS256 JWTs with the given secret. The token carries the username and the
// role claim used by the admin gate.
func NewJWTMaker(secret string) *jwtMaker {
	return &jwtMaker{secret: []byte(secret)}
}

func (m *jwtMaker) Issue(userID, username string, role domain.Role, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Username: username,
		Role:     string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (m *jwtMaker) Verify(tokenString string) (string, domain.Role, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, domain.Role(claims.Role), nil
}
