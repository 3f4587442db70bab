package geosvc

import (
	"context"
	"fmt"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/geo/models"
	"food_market/internal/common"
	"food_market/internal/global"
)

// StateService là cấu trúc chứa các phương thức liên quan đến tỉnh/bang
type StateService struct {
	*basesvc.BaseServiceMongoImpl[models.State]
}

// NewStateService tạo mới StateService
func NewStateService() (*StateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.States)
	if !exist {
		return nil, fmt.Errorf("failed to get states collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &StateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.State](collection, sequence),
	}, nil
}

// InsertOne thêm tỉnh/bang mới sau khi kiểm tra quốc gia còn hoạt động
func (s *StateService) InsertOne(ctx context.Context, state models.State) (models.State, error) {
	var zero models.State

	if err := basesvc.RequireActiveReference(ctx, "Quốc gia", global.MongoDB_ColNames.Countries, state.CountryID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, state)
}
