package geodto

import (
	models "food_market/internal/api/geo/models"
)

// CityCreateInput đầu vào khi thêm thành phố.
// CountryID do service tự suy ra từ tỉnh/bang, client không gửi.
type CityCreateInput struct {
	StateID int64  `json:"stateId" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,min=2,max=100,no_xss"`
}

// ToModel chuyển DTO thành model City
func (input CityCreateInput) ToModel() models.City {
	return models.City{
		StateID: input.StateID,
		Name:    input.Name,
	}
}

// CityUpdateInput đầu vào khi cập nhật thành phố. Tỉnh/bang không đổi sau khi tạo.
type CityUpdateInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input CityUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	return update
}
