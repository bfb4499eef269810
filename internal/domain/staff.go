package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Doctor is a veterinarian listed by the clinic
type Doctor struct {
	ID               ulid.ULID `json:"id"`
	Image            string    `json:"image"`
	DoctorName       string    `json:"doctor_name"`
	Title            string    `json:"title"`
	YearOfExperience int       `json:"year_of_experience"`
	CreatedAt        time.Time `json:"created_at"`
}

type DoctorPatch struct {
	Image            *string
	DoctorName       *string
	Title            *string
	YearOfExperience *int
}

func (p DoctorPatch) IsEmpty() bool {
	return p.Image == nil && p.DoctorName == nil && p.Title == nil && p.YearOfExperience == nil
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
	FindByID(ctx context.Context, id ulid.ULID) (*Doctor, error)
	Update(ctx context.Context, id ulid.ULID, patch DoctorPatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

// Groomer is a grooming specialist
type Groomer struct {
	ID                ulid.ULID `json:"id"`
	Name              string    `json:"name"`
	YearsOfExperience int       `json:"years_of_experience"`
	Photo             string    `json:"photo"`
	CreatedAt         time.Time `json:"created_at"`
}

type GroomerPatch struct {
	Name              *string
	YearsOfExperience *int
	Photo             *string
}

func (p GroomerPatch) IsEmpty() bool {
	return p.Name == nil && p.YearsOfExperience == nil && p.Photo == nil
}

// ValidateGroomer checks the groomer form fields. photoRequired is set on create.
func ValidateGroomer(name, years string, photoPresent, photoRequired bool) (int, error) {
	var errs ValidationErrors
	if IsBlank(name) {
		errs.Add("name", "Name is required")
	} else if len(name) < 3 {
		errs.Add("name", "Name should be at least 3 characters long")
	}

	n, perr := parsePositiveInt(years)
	switch {
	case IsBlank(years):
		errs.Add("yearsOfExperience", "Years of experience are required")
	case perr != nil:
		errs.Add("yearsOfExperience", "Years of experience must be a positive number")
	}

	if photoRequired && !photoPresent {
		errs.Add("photo", "Photo is required")
	}
	return n, errs.Err()
}

type GroomerRepository interface {
	Create(ctx context.Context, g *Groomer) error
	List(ctx context.Context) ([]*Groomer, error)
	FindByID(ctx context.Context, id ulid.ULID) (*Groomer, error)
	Update(ctx context.Context, id ulid.ULID, patch GroomerPatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}
