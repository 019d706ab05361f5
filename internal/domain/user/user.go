package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"helpdesk/internal/shared/authorization"
)

var (
	nameRegexp  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	spaceRegexp = regexp.MustCompile(`\s+`)
)

// blockedEmailDomains lists disposable mail providers rejected at registration.
var blockedEmailDomains = map[string]struct{}{
	"tempmail.com":      {},
	"10minutemail.com":  {},
	"guerrillamail.com": {},
}

// commonPasswords lists trivially guessable passwords rejected everywhere.
var commonPasswords = map[string]struct{}{
	"password":  {},
	"123456789": {},
	"qwerty":    {},
	"admin123":  {},
}

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	normalizedName, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	normalizedEmail, err := ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		name:         normalizedName,
		email:        normalizedEmail,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// ValidateName normalizes whitespace and checks the allowed charset.
// Accented letters are permitted; digits and punctuation are not.
func ValidateName(name string) (string, error) {
	trimmed := spaceRegexp.ReplaceAllString(strings.TrimSpace(name), " ")
	if trimmed == "" {
		return "", fmt.Errorf("name is required")
	}
	if n := utf8.RuneCountInString(trimmed); n < 2 || n > 100 {
		return "", fmt.Errorf("name must be between 2 and 100 characters")
	}
	if !nameRegexp.MatchString(trimmed) {
		return "", fmt.Errorf("name must contain only letters and spaces")
	}
	return trimmed, nil
}

// ValidateEmail lower-cases the address and rejects disposable domains.
func ValidateEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", fmt.Errorf("email is required")
	}
	if !emailRegexp.MatchString(normalized) {
		return "", fmt.Errorf("invalid email format")
	}
	domain := normalized[strings.LastIndex(normalized, "@")+1:]
	if _, blocked := blockedEmailDomains[domain]; blocked {
		return "", fmt.Errorf("email domain not allowed")
	}
	return normalized, nil
}

// ValidatePassword enforces the minimum length and the common-password blocklist.
func ValidatePassword(password string, minLength int) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if utf8.RuneCountInString(password) < minLength {
		return fmt.Errorf("password must be at least %d characters", minLength)
	}
	if utf8.RuneCountInString(password) > 128 {
		return fmt.Errorf("password exceeds maximum length of 128 characters")
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		return fmt.Errorf("password is too common, choose a stronger one")
	}
	return nil
}
