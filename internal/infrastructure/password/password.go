package password

import (
	"errors"

	"github.com/myanimal/petcare-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes account passwords with bcrypt before they are stored
type Hasher struct {
	cost int
}

// NewHasher returns a hasher using cost, or bcrypt.DefaultCost when cost is zero
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError("Password must be at most 72 bytes long.")
		}
		return "", domain.ErrInternal.Wrap(err)
	}
	return string(hashed), nil
}
