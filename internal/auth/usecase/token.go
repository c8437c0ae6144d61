package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"life-admin/internal/auth"
	"life-admin/internal/model"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (uc *implUseCase) issue(user auth.User) (auth.Token, error) {
	now := uc.cfg.Now()
	expires := now.Add(uc.cfg.TTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    uc.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(uc.cfg.Secret)
	if err != nil {
		return auth.Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return auth.Token{AccessToken: signed, TokenType: auth.TokenType, ExpiresAt: expires}, nil
}

// Verify parses an HS256 token issued by Login.
func (uc *implUseCase) Verify(ctx context.Context, accessToken string) (model.Scope, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(uc.cfg.Now),
	}
	if uc.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(uc.cfg.Issuer))
	}

	var c claims
	token, err := jwt.ParseWithClaims(accessToken, &c, func(*jwt.Token) (any, error) {
		return uc.cfg.Secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		uc.l.Debugf(ctx, "uc.Verify: %v", err)
		return model.Scope{}, auth.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return model.Scope{}, auth.ErrInvalidToken
	}
	return model.Scope{UserID: userID, Username: c.Email}, nil
}
