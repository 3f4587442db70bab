// Package geodto - DTO của domain geo.
package geodto

import (
	models "food_market/internal/api/geo/models"
)

// CountryCreateInput đầu vào khi thêm quốc gia vào dữ liệu tra cứu.
type CountryCreateInput struct {
	Name      string `json:"name" validate:"required,min=2,max=100,no_xss"`
	Code      string `json:"code" validate:"required,len=2,alpha"`
	PhoneCode string `json:"phoneCode,omitempty" validate:"omitempty,max=8"`
	Currency  string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// ToModel chuyển DTO thành model Country
func (input CountryCreateInput) ToModel() models.Country {
	return models.Country{
		Name:      input.Name,
		Code:      input.Code,
		PhoneCode: input.PhoneCode,
		Currency:  input.Currency,
	}
}

// CountryUpdateInput đầu vào khi cập nhật quốc gia.
type CountryUpdateInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100,no_xss"`
	PhoneCode *string `json:"phoneCode,omitempty" validate:"omitempty,max=8"`
	Currency  *string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input CountryUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.PhoneCode != nil {
		update["phoneCode"] = *input.PhoneCode
	}
	if input.Currency != nil {
		update["currency"] = *input.Currency
	}
	return update
}
