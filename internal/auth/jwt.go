package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret string

// TokenTTL is the fixed token lifetime; there is no rotation or revocation.
const TokenTTL = time.Hour * 168

func Init(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is not set")
	}
	jwtSecret = secret
	return nil
}

func GenerateJWT(userID uint, email string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"email":    email,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("Invalid or expired token")
	}

	return token, nil
}

// UserID extracts the subject user id from a verified token.
func UserID(token *jwt.Token) (uint, bool) {
	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return 0, false
	}

	idFloat, ok := claims["user_id"].(float64)

	if !ok {
		return 0, false
	}

	return uint(idFloat), true
}
