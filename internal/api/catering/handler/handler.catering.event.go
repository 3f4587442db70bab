// Package cateringhdl - handler của domain catering.
package cateringhdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	cateringdto "food_market/internal/api/catering/dto"
	models "food_market/internal/api/catering/models"
	cateringsvc "food_market/internal/api/catering/service"
	"food_market/internal/global"
)

// CateringEventHandler xử lý các request liên quan đến sự kiện catering
type CateringEventHandler struct {
	*basehdl.BaseHandler[models.CateringEvent, cateringdto.CateringEventCreateInput, cateringdto.CateringEventUpdateInput]
}

// NewCateringEventHandler tạo mới CateringEventHandler
func NewCateringEventHandler() (*CateringEventHandler, error) {
	service, err := cateringsvc.NewCateringEventService()
	if err != nil {
		return nil, fmt.Errorf("failed to create catering event service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "businessBranchId", Collection: global.MongoDB_ColNames.BusinessBranches},
		{Field: "addressId", Collection: global.MongoDB_ColNames.UserAddresses},
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.CateringEvent, cateringdto.CateringEventCreateInput, cateringdto.CateringEventUpdateInput](service, populator)
	base.SetSearchFields("title", "description")
	return &CateringEventHandler{BaseHandler: base}, nil
}
