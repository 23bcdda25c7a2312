package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword возвращается при попытке захешировать пустой пароль
	ErrEmptyPassword = errors.New("password: empty password")

	// ErrMismatch возвращается, когда пароль не совпадает с хешем
	ErrMismatch = errors.New("password: password does not match")
)

// Hash хеширует пароль через bcrypt со стандартной стоимостью
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Compare сравнивает пароль с bcrypt-хешем
func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
