package catalogsvc

import (
	"fmt"

	models "food_market/internal/api/catalog/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
)

// PlanService là cấu trúc chứa các phương thức liên quan đến gói dịch vụ
type PlanService struct {
	*basesvc.BaseServiceMongoImpl[models.Plan]
}

// NewPlanService tạo mới PlanService
func NewPlanService() (*PlanService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Plans)
	if !exist {
		return nil, fmt.Errorf("failed to get plans collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &PlanService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Plan](collection, sequence),
	}, nil
}
