package utils

import (
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues an HS256 token carrying the user's id. Tokens expire
// after seven days.
func GenerateJWT(userID uint, username string, secret string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId":   userID,
        "username": username,
        "sub":      username,
        "exp":      time.Now().Add(time.Hour * 24 * 7).Unix(),
    })

    return token.SignedString([]byte(secret))
}
