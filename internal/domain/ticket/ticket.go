package ticket

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

var (
	titleContentRegexp = regexp.MustCompile(`[a-zA-ZÀ-ÿ0-9]`)
	spaceRegexp        = regexp.MustCompile(`\s+`)
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	createdBy   uint
	categoryID  uint
	response    *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket builds a ticket for creation. Status is always forced to open;
// the creator is whoever the caller resolved from the bearer token.
func NewTicket(
	title string,
	description string,
	categoryID uint,
	priority vo.Priority,
	createdBy uint,
) (*Ticket, error) {
	normalizedTitle, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       normalizedTitle,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		createdBy:   createdBy,
		categoryID:  categoryID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdBy uint,
	categoryID uint,
	response *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdBy:   createdBy,
		categoryID:  categoryID,
		response:    response,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) Response() *string {
	return t.response
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether the given user created this ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.createdBy == userID
}

// ValidateTitle normalizes whitespace and enforces length plus the
// at-least-one-letter-or-digit rule.
func ValidateTitle(title string) (string, error) {
	trimmed := spaceRegexp.ReplaceAllString(strings.TrimSpace(title), " ")
	if trimmed == "" {
		return "", fmt.Errorf("title is required")
	}
	if n := utf8.RuneCountInString(trimmed); n < 5 || n > 200 {
		return "", fmt.Errorf("title must be between 5 and 200 characters")
	}
	if !titleContentRegexp.MatchString(trimmed) {
		return "", fmt.Errorf("title must contain at least letters or digits")
	}
	return trimmed, nil
}

func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if n := utf8.RuneCountInString(description); n < 10 || n > 2000 {
		return fmt.Errorf("description must be between 10 and 2000 characters")
	}
	return nil
}
