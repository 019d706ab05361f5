package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID uint
	Role   authorization.UserRole
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket for admins and only owned tickets for
// regular users, newest first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	var (
		tickets []*ticket.Ticket
		err     error
	)
	if query.Role.IsAdmin() {
		tickets, err = uc.ticketRepo.ListAll(ctx)
	} else {
		tickets, err = uc.ticketRepo.ListByCreator(ctx, query.UserID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
