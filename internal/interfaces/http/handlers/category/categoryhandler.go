package category

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/category/usecases"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCategoryCommand) (*category.Category, error)
}

type listCategoriesUseCase interface {
	Execute(ctx context.Context) ([]*category.Category, error)
}

type getCategoryUseCase interface {
	Execute(ctx context.Context, query usecases.GetCategoryQuery) (*category.Category, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*category.Category, error)
}

type deleteCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteCategoryCommand) error
}

type Handler struct {
	createUseCase createCategoryUseCase
	listUseCase   listCategoriesUseCase
	getUseCase    getCategoryUseCase
	updateUseCase updateCategoryUseCase
	deleteUseCase deleteCategoryUseCase
	logger        logger.Interface
}

func NewHandler(
	createUC createCategoryUseCase,
	listUC listCategoriesUseCase,
	getUC getCategoryUseCase,
	updateUC updateCategoryUseCase,
	deleteUC deleteCategoryUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), req.ToCreateCommand())
	if err != nil {
		h.logger.Warnw("category creation failed", "error", err, "name", req.Name)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewCategoryResponse(created))
}

func (h *Handler) List(c *gin.Context) {
	categories, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewCategoryResponses(categories))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCategoryQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewCategoryResponse(found))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), req.ToUpdateCommand(id))
	if err != nil {
		h.logger.Warnw("category update failed", "error", err, "category_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewCategoryResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteCategoryCommand{ID: id}); err != nil {
		h.logger.Warnw("category deletion failed", "error", err, "category_id", id)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", gin.H{"ok": true})
}
