package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}

// NewOrderCode builds a gateway order identifier that is unguessable across
// tenants: school fragment + unix seconds + random hex. Never sequential.
func NewOrderCode(schoolID string) (string, error) {
	frag := schoolID
	if len(frag) > 8 {
		frag = frag[:8]
	}
	suffix, err := GenerateSecureToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SH-%s-%d-%s", frag, time.Now().Unix(), suffix), nil
}

// NewReferralCode returns a short random partner code.
func NewReferralCode() (string, error) {
	token, err := GenerateSecureToken(4)
	if err != nil {
		return "", err
	}
	return "REF-" + token, nil
}
