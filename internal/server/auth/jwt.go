// Package auth issues and validates the HS256 device tokens carried on
// gRPC metadata.
package auth

import (
	"time"

	"github.com/dkrasnenko/sharedtab/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the device identity. The display
// name rides in the token so session calls do not need a user store lookup.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string
	DisplayName string
}

// GenerateToken signs a token for the device valid for validityDuration.
func GenerateToken(userID, displayName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:      userID,
		DisplayName: displayName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// GetClaimsFromToken parses and validates a token and returns its claims.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// GetUserIDFromToken parses and validates a token and returns its user id.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims, err := GetClaimsFromToken(tokenString, secretKey)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
