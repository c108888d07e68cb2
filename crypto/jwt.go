package crypto

import "github.com/dgrijalva/jwt-go"

// JWTAdapter signs HS256 tokens carrying the account id as subject.
type JWTAdapter struct {
	secret []byte
}

func NewJWTAdapter(secret string) *JWTAdapter {
	return &JWTAdapter{secret: []byte(secret)}
}

func (a *JWTAdapter) Encrypt(value string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{Issuer: "goaccounts", Subject: value})
	return token.SignedString(a.secret)
}
