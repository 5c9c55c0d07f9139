package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"dispatch/internal/entities"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Principal - проверенный вызывающий из JWT.
type Principal struct {
	Subject string
	Role    entities.Role
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RoleFromContext возвращает роль вызывающего или пустую роль, которую
// политика доступа всегда отклоняет.
func RoleFromContext(ctx context.Context) entities.Role {
	p, _ := FromContext(ctx)
	return p.Role
}

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// ParseHeader разбирает значение "Authorization: Bearer <jwt>".
func (v *Verifier) ParseHeader(header string) (Principal, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Principal{}, ErrMissingToken
	}
	return v.Parse(strings.TrimSpace(token))
}

func (v *Verifier) Parse(token string) (Principal, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}

	role := entities.Role(strings.ToUpper(strings.TrimSpace(c.Role)))
	if !role.IsValid() {
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}

	return Principal{Subject: c.Subject, Role: role}, nil
}
