package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	listUsersUseCase  listUsersUseCase
	getUserUseCase    getUserUseCase
	updateUserUseCase updateUserUseCase
	deleteUserUseCase deleteUserUseCase
	logger            logger.Interface
}

func NewUserHandler(
	listUC listUsersUseCase,
	getUC getUserUseCase,
	updateUC updateUserUseCase,
	deleteUC deleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUseCase:  listUC,
		getUserUseCase:    getUC,
		updateUserUseCase: updateUC,
		deleteUserUseCase: deleteUC,
		logger:            logger,
	}
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
	Role     *string `json:"role"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUsersUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponses(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUserUseCase.Execute(c.Request.Context(), usecases.GetUserQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(found))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := usecases.UpdateUserCommand{
		TargetID:  id,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		ActorID:   c.GetUint("user_id"),
		ActorRole: authorization.UserRole(c.GetString(authorization.ContextKeyUserRole)),
	}

	updated, err := h.updateUserUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("user update failed", "error", err, "target_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewUserResponse(updated))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUserUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{TargetID: id})
	if err != nil {
		h.logger.Warnw("user deletion failed", "error", err, "target_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted := result.DeletedUser
	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", gin.H{
		"deleted_user": gin.H{
			"id":    deleted.ID(),
			"name":  deleted.Name(),
			"email": deleted.Email(),
		},
	})
}
