package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 session token carrying the user's id, email
// and display name.
func GenerateJWT(secret []byte, userID, email, name string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"name":   name,
		"exp":    time.Now().Add(time.Hour * 72).Unix(),
	})

	return token.SignedString(secret)
}
