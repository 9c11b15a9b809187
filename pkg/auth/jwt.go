package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(accountID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = func() []byte {
	if s := os.Getenv("IDENTITY_TOKEN_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("your-secret-key")
}()

// Claims carried by identity-provider tokens. Subject is the opaque
// account id the ledger trusts as the Account key.
type Claims struct {
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(accountID string, expirationTime time.Time) (string, error) {
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   accountID,
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "mainet-identity",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
