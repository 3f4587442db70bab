package geohdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	geodto "food_market/internal/api/geo/dto"
	models "food_market/internal/api/geo/models"
	geosvc "food_market/internal/api/geo/service"
	"food_market/internal/global"
)

// UserAddressHandler xử lý các request liên quan đến địa chỉ người dùng
type UserAddressHandler struct {
	*basehdl.BaseHandler[models.UserAddress, geodto.UserAddressCreateInput, geodto.UserAddressUpdateInput]
}

// NewUserAddressHandler tạo mới UserAddressHandler
func NewUserAddressHandler() (*UserAddressHandler, error) {
	service, err := geosvc.NewUserAddressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user address service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "cityId", Collection: global.MongoDB_ColNames.Cities},
		{Field: "stateId", Collection: global.MongoDB_ColNames.States},
		{Field: "countryId", Collection: global.MongoDB_ColNames.Countries},
	}, nil)

	base := basehdl.NewBaseHandler[models.UserAddress, geodto.UserAddressCreateInput, geodto.UserAddressUpdateInput](service, populator)
	base.SetSearchFields("label", "addressLine")
	return &UserAddressHandler{BaseHandler: base}, nil
}
