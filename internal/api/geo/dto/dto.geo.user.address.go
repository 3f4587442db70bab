package geodto

import (
	models "food_market/internal/api/geo/models"
)

// UserAddressCreateInput đầu vào khi người dùng lưu địa chỉ mới.
// StateID và CountryID do service tự suy ra từ thành phố, client không gửi.
type UserAddressCreateInput struct {
	CityID      int64  `json:"cityId" validate:"required,gt=0"`
	Label       string `json:"label,omitempty" validate:"omitempty,max=50,no_xss"`
	AddressLine string `json:"addressLine" validate:"required,min=5,max=300,no_xss"`
	PostalCode  string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20"`
	IsDefault   bool   `json:"isDefault"`
}

// ToModel chuyển DTO thành model UserAddress
func (input UserAddressCreateInput) ToModel() models.UserAddress {
	return models.UserAddress{
		CityID:      input.CityID,
		Label:       input.Label,
		AddressLine: input.AddressLine,
		PostalCode:  input.PostalCode,
		Phone:       input.Phone,
		IsDefault:   input.IsDefault,
	}
}

// UserAddressUpdateInput đầu vào khi cập nhật địa chỉ.
type UserAddressUpdateInput struct {
	CityID      *int64  `json:"cityId,omitempty" validate:"omitempty,gt=0"`
	Label       *string `json:"label,omitempty" validate:"omitempty,max=50,no_xss"`
	AddressLine *string `json:"addressLine,omitempty" validate:"omitempty,min=5,max=300,no_xss"`
	PostalCode  *string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	IsDefault   *bool   `json:"isDefault,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input UserAddressUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.CityID != nil {
		update["cityId"] = *input.CityID
	}
	if input.Label != nil {
		update["label"] = *input.Label
	}
	if input.AddressLine != nil {
		update["addressLine"] = *input.AddressLine
	}
	if input.PostalCode != nil {
		update["postalCode"] = *input.PostalCode
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.IsDefault != nil {
		update["isDefault"] = *input.IsDefault
	}
	return update
}
