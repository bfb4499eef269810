package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors; it is an Error once non-empty
type ValidationErrors []FieldError

// Add adds a validation error to the slice
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// HasErrors returns true if there are any validation errors
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string { return v.GetMessage() }

func (v ValidationErrors) GetCode() string { return CodeValidation }

func (v ValidationErrors) GetMessage() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, " ")
}

func (v ValidationErrors) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.GetCode() == CodeValidation
}

// Err returns nil when there is nothing to report
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

var (
	userNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadharPattern   = regexp.MustCompile(`^\d{12}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsBlank reports whether s is empty after trimming
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidMobile accepts a 10-digit Indian mobile number starting with 6-9
func ValidMobile(s string) bool { return mobilePattern.MatchString(s) }

// ValidAadhar accepts a 12-digit Aadhaar number
func ValidAadhar(s string) bool { return aadharPattern.MatchString(s) }

// ValidDate accepts a calendar date in YYYY-MM-DD form
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("not positive")
	}
	return n, nil
}
