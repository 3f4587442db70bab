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

// StateHandler xử lý các request liên quan đến tỉnh/bang
type StateHandler struct {
	*basehdl.BaseHandler[models.State, geodto.StateCreateInput, geodto.StateUpdateInput]
}

// NewStateHandler tạo mới StateHandler
func NewStateHandler() (*StateHandler, error) {
	service, err := geosvc.NewStateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create state service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "countryId", Collection: global.MongoDB_ColNames.Countries},
	}, nil)

	base := basehdl.NewBaseHandler[models.State, geodto.StateCreateInput, geodto.StateUpdateInput](service, populator)
	base.SetSearchFields("name", "code")
	return &StateHandler{BaseHandler: base}, nil
}
