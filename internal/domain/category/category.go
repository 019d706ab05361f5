package category

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	nameRegexp  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s\-_]+$`)
	colorRegexp = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	spaceRegexp = regexp.MustCompile(`\s+`)
)

// Defaults substituted for null fields when listing categories.
const (
	DefaultDescription = "Categoria"
	DefaultColor       = "#3b82f6"
)

type Category struct {
	id          uint
	name        string
	description string
	color       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description, color string) (*Category, error) {
	normalizedName, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	if utf8.RuneCountInString(description) > 500 {
		return nil, fmt.Errorf("description exceeds maximum length of 500 characters")
	}

	normalizedColor, err := ValidateColor(color)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Category{
		name:        normalizedName,
		description: description,
		color:       normalizedColor,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	name string,
	description string,
	color string,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		color:       color,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) Color() string {
	return c.color
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// ValidateName normalizes whitespace and checks length and charset.
// Letters (accented included), digits, spaces, hyphens and underscores only.
func ValidateName(name string) (string, error) {
	trimmed := spaceRegexp.ReplaceAllString(strings.TrimSpace(name), " ")
	if trimmed == "" {
		return "", fmt.Errorf("category name is required")
	}
	if n := utf8.RuneCountInString(trimmed); n < 3 || n > 50 {
		return "", fmt.Errorf("category name must be between 3 and 50 characters")
	}
	if !nameRegexp.MatchString(trimmed) {
		return "", fmt.Errorf("category name contains invalid characters")
	}
	return trimmed, nil
}

// ValidateColor checks the #RRGGBB format and lower-cases the value.
func ValidateColor(color string) (string, error) {
	if color == "" {
		return "", fmt.Errorf("color is required")
	}
	if !colorRegexp.MatchString(color) {
		return "", fmt.Errorf("color must be in hexadecimal format (#RRGGBB)")
	}
	return strings.ToLower(color), nil
}
