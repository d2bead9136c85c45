package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/spf13/viper"
)

const tokenTTL = 12 * time.Hour

// AuthTokenWrapper is the claim set carried by the auth cookie.
type AuthTokenWrapper struct {
	Login     string `json:"login"`
	SessionID string `json:"session_id"`
	jwt.StandardClaims
}

func GenerateAuthToken(w *AuthTokenWrapper) (string, error) {
	w.ExpiresAt = time.Now().Add(tokenTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, w)

	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperJWTSecret)))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	var wrapper AuthTokenWrapper
	token, err := jwt.ParseWithClaims(raw, &wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperJWTSecret)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return &wrapper, nil
}
