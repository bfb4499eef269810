package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// User represents a registered account in the system
type User struct {
	ID        ulid.ULID `json:"id"`
	UserImg   *string   `json:"userImg"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	MobileNo  string    `json:"mobileNo"`
	AadharNo  string    `json:"aadharNo"`
	Password  string    `json:"-"` // Password is not serialized to JSON
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserFields carries the raw account fields of a create or update request
type UserFields struct {
	UserName string
	Email    string
	MobileNo string
	AadharNo string
	Password string
}

// Validate checks the account fields. With partial set only non-empty fields
// are checked; otherwise every field is required.
func (f UserFields) Validate(partial bool) error {
	var errs ValidationErrors
	check := func(field, value string, rule func(string) string) {
		if IsBlank(value) {
			if !partial {
				errs.Add(field, field+" is required.")
			}
			return
		}
		if msg := rule(value); msg != "" {
			errs.Add(field, msg)
		}
	}

	check("user_name", f.UserName, func(v string) string {
		if len(v) < 3 {
			return "Name must be at least 3 characters long."
		}
		if !userNamePattern.MatchString(v) {
			return "Username must only contain letters and spaces."
		}
		return ""
	})
	check("email", f.Email, func(v string) string {
		if !ValidEmail(v) {
			return "Invalid email format."
		}
		return ""
	})
	check("mobile_no", f.MobileNo, func(v string) string {
		if !ValidMobile(v) {
			return "Mobile number must be a valid 10-digit number starting with 6-9."
		}
		return ""
	})
	check("aadhar_no", f.AadharNo, func(v string) string {
		if !ValidAadhar(v) {
			return "Aadhar number must be a 12-digit numeric value."
		}
		return ""
	})
	check("password", f.Password, func(v string) string {
		if len(v) < 6 {
			return "Password must be at least 6 characters long."
		}
		return ""
	})

	return errs.Err()
}

// UserPatch holds the account fields present in an update request
type UserPatch struct {
	UserName *string
	Email    *string
	MobileNo *string
	AadharNo *string
	Password *string
	UserImg  *string
}

func (p UserPatch) IsEmpty() bool {
	return p.UserName == nil && p.Email == nil && p.MobileNo == nil &&
		p.AadharNo == nil && p.Password == nil && p.UserImg == nil
}

// UserRepository defines the interface for account persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id ulid.ULID) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id ulid.ULID, patch UserPatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

// PasswordHasher turns a plain password into its stored form
type PasswordHasher interface {
	Hash(plain string) (string, error)
}
