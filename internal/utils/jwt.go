// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrNoUserNameClaim            = errors.New("token has no user name claim")
)

// DefaultUserNameClaims are the claims a cloud access token may carry the
// user name in, most specific first.
var DefaultUserNameClaims = []string{"custom:user_name", "cognito:username", "email", "sub"}

// GenerateJWTToken signs an HS256 token for subject. The emulator prints one
// on startup so the client can be configured without a real account.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// UserNameFromJWT reads the first non-empty string among claimNames without
// verifying the signature. Nil claimNames means DefaultUserNameClaims.
func UserNameFromJWT(tokenString string, claimNames ...string) (string, error) {
	if len(claimNames) == 0 {
		claimNames = DefaultUserNameClaims
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	for _, name := range claimNames {
		if v, ok := claims[name].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", ErrNoUserNameClaim
}
