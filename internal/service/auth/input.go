package auth

import (
	"regexp"
	"unicode"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// SignUpInput holds parameters for creating an account.
type SignUpInput struct {
	Email    string
	Password string
	Username string
}

// Validate checks all fields and collects all errors.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	case len(i.Email) > 255:
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email must be less than 255 characters"})
	case !emailRegex.MatchString(i.Email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email address"})
	}

	switch n := domain.Len(i.Username); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username is required"})
	case n > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username must be less than 50 characters"})
	case !usernameRegex.MatchString(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"})
	}

	if msg := passwordProblem(i.Password); msg != "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msg})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func passwordProblem(p string) string {
	if len(p) < 8 {
		return "Password must be at least 8 characters"
	}
	if len(p) > 72 {
		return "Password must be at most 72 bytes"
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		return "Password must contain at least one uppercase letter"
	case !lower:
		return "Password must contain at least one lowercase letter"
	case !digit:
		return "Password must contain at least one number"
	}
	return ""
}

// SignInInput holds parameters for password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
