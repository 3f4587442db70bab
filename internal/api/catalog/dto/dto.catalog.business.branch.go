package catalogdto

import (
	models "food_market/internal/api/catalog/models"
)

// BusinessBranchCreateInput đầu vào khi tạo chi nhánh kinh doanh.
type BusinessBranchCreateInput struct {
	BusinessTypeID int64  `json:"businessTypeId" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required,no_xss"`
	Description    string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL        string `json:"logoUrl,omitempty"`
	OpeningHours   string `json:"openingHours,omitempty"`
}

// ToModel chuyển DTO thành model BusinessBranch
func (input BusinessBranchCreateInput) ToModel() models.BusinessBranch {
	return models.BusinessBranch{
		BusinessTypeID: input.BusinessTypeID,
		Name:           input.Name,
		Description:    input.Description,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		LogoURL:        input.LogoURL,
		OpeningHours:   input.OpeningHours,
	}
}

// BusinessBranchUpdateInput đầu vào khi cập nhật chi nhánh.
type BusinessBranchUpdateInput struct {
	BusinessTypeID *int64  `json:"businessTypeId,omitempty" validate:"omitempty,gt=0"`
	Name           *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description    *string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	OpeningHours   *string `json:"openingHours,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input BusinessBranchUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.BusinessTypeID != nil {
		update["businessTypeId"] = *input.BusinessTypeID
	}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Address != nil {
		update["address"] = *input.Address
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}
	if input.LogoURL != nil {
		update["logoUrl"] = *input.LogoURL
	}
	if input.OpeningHours != nil {
		update["openingHours"] = *input.OpeningHours
	}
	return update
}
