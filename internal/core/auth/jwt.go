package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gin-gorm-todolist/pkg/utils"
)

type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// UID subject 里存的是用户 id
func (c *Claims) UID() (uint, error) {
	n, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad subject %q: %w", c.Subject, err)
	}
	return uint(n), nil
}

func (c *Claims) HasRole(role string) bool { return slices.Contains(c.Roles, role) }

// Revoker 注销过的 token（按 jti）
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

var ErrRevoked = errors.New("token revoked")

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	// 为空则不支持注销
	Revoker Revoker
}

func (j *JWTer) Issue(uid uint, username string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.NewID(),
			Subject:   strconv.FormatUint(uint64(uid), 10),
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(ctx context.Context, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", token.Header["alg"])
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if j.Revoker != nil && c.ID != "" {
		revoked, err := j.Revoker.IsRevoked(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrRevoked
		}
	}
	return c, nil
}

// Revoke 拉黑到 token 原本过期为止；未配置 Revoker 时什么都不做
func (j *JWTer) Revoke(ctx context.Context, c *Claims) error {
	if j.Revoker == nil || c == nil || c.ID == "" {
		return nil
	}
	ttl := j.TTL
	if c.ExpiresAt != nil {
		ttl = time.Until(c.ExpiresAt.Time) + 60*time.Second
	}
	if ttl <= 0 {
		return nil
	}
	return j.Revoker.Revoke(ctx, c.ID, ttl)
}
