package cataloghdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	catalogdto "food_market/internal/api/catalog/dto"
	models "food_market/internal/api/catalog/models"
	catalogsvc "food_market/internal/api/catalog/service"
	"food_market/internal/global"
)

// PlanHandler xử lý các request liên quan đến gói dịch vụ
type PlanHandler struct {
	*basehdl.BaseHandler[models.Plan, catalogdto.PlanCreateInput, catalogdto.PlanUpdateInput]
}

// NewPlanHandler tạo mới PlanHandler
func NewPlanHandler() (*PlanHandler, error) {
	service, err := catalogsvc.NewPlanService()
	if err != nil {
		return nil, fmt.Errorf("failed to create plan service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.Plan, catalogdto.PlanCreateInput, catalogdto.PlanUpdateInput](service, populator)
	base.SetSearchFields("name", "description")
	return &PlanHandler{BaseHandler: base}, nil
}
