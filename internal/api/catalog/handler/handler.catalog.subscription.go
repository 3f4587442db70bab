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

// SubscriptionHandler xử lý các request liên quan đến đăng ký gói dịch vụ
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.Subscription, catalogdto.SubscriptionCreateInput, catalogdto.SubscriptionUpdateInput]
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	service, err := catalogsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "planId", Collection: global.MongoDB_ColNames.Plans},
		{Field: "businessBranchId", Collection: global.MongoDB_ColNames.BusinessBranches},
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.Subscription, catalogdto.SubscriptionCreateInput, catalogdto.SubscriptionUpdateInput](service, populator)
	return &SubscriptionHandler{BaseHandler: base}, nil
}
