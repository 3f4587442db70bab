// Package geosvc - service của domain geo.
package geosvc

import (
	"fmt"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/geo/models"
	"food_market/internal/common"
	"food_market/internal/global"
)

// CountryService là cấu trúc chứa các phương thức liên quan đến quốc gia
type CountryService struct {
	*basesvc.BaseServiceMongoImpl[models.Country]
}

// NewCountryService tạo mới CountryService
func NewCountryService() (*CountryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Countries)
	if !exist {
		return nil, fmt.Errorf("failed to get countries collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &CountryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Country](collection, sequence),
	}, nil
}
