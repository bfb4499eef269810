package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Profile is a phone-registered customer. The row is created by the OTP flow
// and filled in later through profile updates.
type Profile struct {
	ID          ulid.ULID `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Name        *string   `json:"name"`
	Email       *string   `json:"email"`
	AadharNo    *string   `json:"aadharNo"`
	UserImg     *string   `json:"userImg"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfilePatch holds the profile fields present in an update request.
// Password must already be hashed.
type ProfilePatch struct {
	PhoneNumber *string
	Name        *string
	Email       *string
	AadharNo    *string
	Password    *string
	UserImg     *string
}

func (p ProfilePatch) IsEmpty() bool {
	return p.PhoneNumber == nil && p.Name == nil && p.Email == nil &&
		p.AadharNo == nil && p.Password == nil && p.UserImg == nil
}

// ProfileRepository persists profiles; it is also the phone registry
type ProfileRepository interface {
	PhoneRegistry

	List(ctx context.Context) ([]*Profile, error)
	FindByID(ctx context.Context, id ulid.ULID) (*Profile, error)
	UpdateName(ctx context.Context, id ulid.ULID, name string) error

	// Update applies patch and returns the upload paths it superseded
	Update(ctx context.Context, id ulid.ULID, patch ProfilePatch) ([]string, error)
}
