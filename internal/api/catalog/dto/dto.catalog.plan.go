package catalogdto

import (
	models "food_market/internal/api/catalog/models"
)

// PlanCreateInput đầu vào khi tạo gói dịch vụ.
type PlanCreateInput struct {
	Name         string   `json:"name" validate:"required,no_xss"`
	Description  string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	Price        float64  `json:"price" validate:"gte=0"`
	Currency     string   `json:"currency" validate:"required,len=3"`
	DurationDays int64    `json:"durationDays" validate:"required,gt=0"`
	Features     []string `json:"features,omitempty"`
}

// ToModel chuyển DTO thành model Plan
func (input PlanCreateInput) ToModel() models.Plan {
	return models.Plan{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Currency:     input.Currency,
		DurationDays: input.DurationDays,
		Features:     input.Features,
	}
}

// PlanUpdateInput đầu vào khi cập nhật gói dịch vụ.
type PlanUpdateInput struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,no_xss"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency     *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	DurationDays *int64   `json:"durationDays,omitempty" validate:"omitempty,gt=0"`
	Features     []string `json:"features,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input PlanUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Price != nil {
		update["price"] = *input.Price
	}
	if input.Currency != nil {
		update["currency"] = *input.Currency
	}
	if input.DurationDays != nil {
		update["durationDays"] = *input.DurationDays
	}
	if input.Features != nil {
		update["features"] = input.Features
	}
	return update
}
