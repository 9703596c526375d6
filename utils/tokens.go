package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"lawmanBack/internal/models"
)

type Manager struct {
	signingKey string
	now        func() time.Time
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey, now: time.Now}, nil
}

// NewJWT signs a token for userID. Tokens carry no expiry and stay valid
// until the signing key changes.
func (m *Manager) NewJWT(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}

	claims := &models.Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: m.now().Unix(),
			Subject:  userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.signingKey))
}

// Parse verifies accessToken and returns the user it was issued to.
func (m *Manager) Parse(accessToken string) (string, error) {
	if accessToken == "" {
		return "", fmt.Errorf("%w: missing token", models.ErrUnauthorized)
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return "", fmt.Errorf("%w: token has no user", models.ErrUnauthorized)
	}

	return userID, nil
}
