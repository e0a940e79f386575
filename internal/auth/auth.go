package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/emilythestrangee/twitter-clone/backend/internal/models"
)

// Identity is the verified caller extracted from a bearer token. Handlers
// receive it from the auth middleware instead of digging claims out of the
// request themselves.
type Identity struct {
	UserID uint
	Email  string
	Role   models.Role
}

type Claims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 2 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
}

func NewTokenService(secret []byte, issuer, audience string) *TokenService {
	return &TokenService{secret: secret, issuer: issuer, audience: audience}
}

// Issue signs a token for the given user, expiring in TokenTTL.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature, issuer, audience and expiry, and returns the
// caller's identity on success.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
