package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/JMURv/trust-bridge/internal/auth/captcha"
	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/config"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../../tests/mocks/mock_auth.go -package=mocks . Core

type Core interface {
	jwt.Port
	captcha.Port
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

type Auth struct {
	*jwt.Core
	*captcha.Recaptcha
	cost int
}

func New(conf config.Config) *Auth {
	cost := conf.Auth.PasswordCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Auth{
		Core:      jwt.New(conf),
		Recaptcha: captcha.New(conf),
		cost:      cost,
	}
}

func (a *Auth) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), a.cost)
	return string(bytes), err
}

func (a *Auth) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashToken is how refresh tokens are stored: only the sha256 digest is persisted.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
