package ticket

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
	CategoryID  uint   `json:"category_id" binding:"required,gt=0"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(createdBy uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Priority:    r.Priority,
		CreatedBy:   createdBy,
	}
}

// UpdateTicketRequest carries a partial update. Absent fields stay untouched.
type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Response    *string `json:"response"`
}

func (r *UpdateTicketRequest) ToCommand(id, actorID uint, actorRole string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Status:      r.Status,
		Priority:    r.Priority,
		Response:    r.Response,
		ActorID:     actorID,
		ActorRole:   authorizationRole(actorRole),
	}
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   uint      `json:"created_by"`
	CategoryID  uint      `json:"category_id"`
	Response    *string   `json:"response"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedBy:   t.CreatedBy(),
		CategoryID:  t.CategoryID(),
		Response:    t.Response(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketResponse(t))
	}
	return out
}
