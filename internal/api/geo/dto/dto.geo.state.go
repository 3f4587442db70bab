package geodto

import (
	models "food_market/internal/api/geo/models"
)

// StateCreateInput đầu vào khi thêm tỉnh/bang.
type StateCreateInput struct {
	CountryID int64  `json:"countryId" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,min=2,max=100,no_xss"`
	Code      string `json:"code,omitempty" validate:"omitempty,max=10"`
}

// ToModel chuyển DTO thành model State
func (input StateCreateInput) ToModel() models.State {
	return models.State{
		CountryID: input.CountryID,
		Name:      input.Name,
		Code:      input.Code,
	}
}

// StateUpdateInput đầu vào khi cập nhật tỉnh/bang. Quốc gia không đổi sau khi tạo.
type StateUpdateInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100,no_xss"`
	Code *string `json:"code,omitempty" validate:"omitempty,max=10"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input StateUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Code != nil {
		update["code"] = *input.Code
	}
	return update
}
