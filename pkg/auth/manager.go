package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/tourhub/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager provides logic for access & refresh JWT generation and parsing.
type TokenManager interface {
	NewAccessToken(adminID uuid.UUID, role string) (string, time.Duration, error)
	NewRefreshToken(adminID uuid.UUID) (string, time.Duration, error)
	ParseAccessToken(token string) (*Claims, error)
	ParseRefreshToken(token string) (*Claims, error)
}

// Claims carries the verified subject and role extracted from a token.
type Claims struct {
	Subject uuid.UUID
	Role    string
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

type Manager struct {
	signingKey      string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	if cfg.RefreshTokenTTL == 0 {
		return nil, errors.New("empty refresh token ttl")
	}

	return &Manager{
		signingKey:      cfg.SigningKey,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}, nil
}

func (m *Manager) NewAccessToken(adminID uuid.UUID, role string) (string, time.Duration, error) {
	signed, err := m.sign(adminID, role, tokenTypeAccess, m.accessTokenTTL)
	if err != nil {
		return "", 0, err
	}
	return signed, m.accessTokenTTL, nil
}

func (m *Manager) NewRefreshToken(adminID uuid.UUID) (string, time.Duration, error) {
	signed, err := m.sign(adminID, "", tokenTypeRefresh, m.refreshTokenTTL)
	if err != nil {
		return "", 0, err
	}
	return signed, m.refreshTokenTTL, nil
}

func (m *Manager) ParseAccessToken(token string) (*Claims, error) {
	return m.parse(token, tokenTypeAccess)
}

func (m *Manager) ParseRefreshToken(token string) (*Claims, error) {
	return m.parse(token, tokenTypeRefresh)
}

func (m *Manager) sign(adminID uuid.UUID, role string, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   adminID.String(),
		},
		Role:      role,
		TokenType: tokenType,
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign jwt failed: %w", err)
	}

	return signed, nil
}

func (m *Manager) parse(tokenString string, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, errors.New("error get claims from token")
	}

	if claims.TokenType != wantType {
		return nil, errors.New("unexpected token type")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject uuid parse: %w", err)
	}

	return &Claims{Subject: subject, Role: claims.Role}, nil
}
