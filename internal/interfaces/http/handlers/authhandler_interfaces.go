package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/user"
)

// Use case interfaces for the auth and user handlers. They keep the handlers
// testable with lightweight fakes.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*user.User, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, query usecases.GetProfileQuery) (*user.User, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context) ([]*user.User, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, query usecases.GetUserQuery) (*user.User, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*user.User, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteUserCommand) (*usecases.DeleteUserResult, error)
}

// csrfTokenIssuer hands out tokens bound to the caller's session.
type csrfTokenIssuer interface {
	Generate(sessionID string) (string, error)
}

// sessionResolver identifies the session a CSRF token should be bound to.
type sessionResolver interface {
	SessionID(c *gin.Context) string
}
