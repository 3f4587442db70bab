// Package catalogdto - các DTO vào/ra của domain catalog.
package catalogdto

import (
	models "food_market/internal/api/catalog/models"
)

// BusinessTypeCreateInput đầu vào khi tạo loại hình kinh doanh.
type BusinessTypeCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Icon        string `json:"icon,omitempty"`
}

// ToModel chuyển DTO thành model BusinessType
func (input BusinessTypeCreateInput) ToModel() models.BusinessType {
	return models.BusinessType{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
}

// BusinessTypeUpdateInput đầu vào khi cập nhật loại hình kinh doanh.
type BusinessTypeUpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description *string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Icon        *string `json:"icon,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input BusinessTypeUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Icon != nil {
		update["icon"] = *input.Icon
	}
	return update
}
