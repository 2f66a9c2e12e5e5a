package dto

type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Age       *int    `json:"age,omitempty" validate:"omitempty,gte=13"`
	CountryID *string `json:"country_id,omitempty" validate:"omitempty,uuid"`
}
