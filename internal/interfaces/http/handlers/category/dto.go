package category

import (
	"time"

	"helpdesk/internal/application/category/usecases"
	"helpdesk/internal/domain/category"
)

// CategoryRequest carries the full category payload. Updates replace every
// field, so create and update share the same shape.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"max=500"`
	Color       string `json:"color" binding:"required,len=7"`
}

func (r *CategoryRequest) ToCreateCommand() usecases.CreateCategoryCommand {
	return usecases.CreateCategoryCommand{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
	}
}

func (r *CategoryRequest) ToUpdateCommand(id uint) usecases.UpdateCategoryCommand {
	return usecases.UpdateCategoryCommand{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
	}
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCategoryResponse(cat *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID(),
		Name:        cat.Name(),
		Description: cat.Description(),
		Color:       cat.Color(),
		CreatedAt:   cat.CreatedAt(),
	}
}

func NewCategoryResponses(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, NewCategoryResponse(cat))
	}
	return out
}
