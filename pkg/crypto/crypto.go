package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor used for stored passwords
const DefaultPasswordCost = 12

// ErrEmptyPassword is returned when hashing an empty password
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost
type PasswordHasher struct {
	cost int
	// dummy is compared against when no stored digest exists so that unknown
	// accounts take as long to reject as wrong passwords
	dummy []byte
}

// NewPasswordHasher returns a hasher. Costs outside bcrypt's range use DefaultPasswordCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("sagestone-dummy-password"), cost)
	return &PasswordHasher{cost: cost, dummy: dummy}
}

// Hash returns a salted one-way digest of password
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. An empty digest is compared
// against a dummy value and always fails.
func (h *PasswordHasher) Verify(password, digest string) bool {
	if digest == "" {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Cost returns the configured bcrypt cost
func (h *PasswordHasher) Cost() int {
	return h.cost
}
