package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies bearer tokens issued by the external identity provider.
// This service never issues production tokens itself; Encode exists for
// tests and local tooling.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	Encode(claims map[string]interface{}) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) Encode(claims map[string]interface{}) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}
