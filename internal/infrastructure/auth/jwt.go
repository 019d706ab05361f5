package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helpdesk/internal/shared/authorization"
)

// Claims carries the token payload. The subject is the account email.
type Claims struct {
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	expMinutes int
}

func NewJWTService(secret string, expMinutes int) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

func (s *JWTService) Generate(email string, role authorization.UserRole) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// ExpMinutes returns the access token lifetime in minutes.
func (s *JWTService) ExpMinutes() int {
	return s.expMinutes
}
