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

// CityHandler xử lý các request liên quan đến thành phố
type CityHandler struct {
	*basehdl.BaseHandler[models.City, geodto.CityCreateInput, geodto.CityUpdateInput]
}

// NewCityHandler tạo mới CityHandler
func NewCityHandler() (*CityHandler, error) {
	service, err := geosvc.NewCityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create city service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "stateId", Collection: global.MongoDB_ColNames.States},
		{Field: "countryId", Collection: global.MongoDB_ColNames.Countries},
	}, nil)

	base := basehdl.NewBaseHandler[models.City, geodto.CityCreateInput, geodto.CityUpdateInput](service, populator)
	base.SetSearchFields("name")
	return &CityHandler{BaseHandler: base}, nil
}
