// Package catalogsvc - các service của domain catalog.
package catalogsvc

import (
	"fmt"

	models "food_market/internal/api/catalog/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
)

// BusinessTypeService là cấu trúc chứa các phương thức liên quan đến loại hình kinh doanh
type BusinessTypeService struct {
	*basesvc.BaseServiceMongoImpl[models.BusinessType]
}

// NewBusinessTypeService tạo mới BusinessTypeService
func NewBusinessTypeService() (*BusinessTypeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BusinessTypes)
	if !exist {
		return nil, fmt.Errorf("failed to get business_types collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &BusinessTypeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BusinessType](collection, sequence),
	}, nil
}
