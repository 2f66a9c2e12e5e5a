package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
