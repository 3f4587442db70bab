package geosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/geo/models"
	"food_market/internal/common"
	"food_market/internal/global"
)

// CityService là cấu trúc chứa các phương thức liên quan đến thành phố
type CityService struct {
	*basesvc.BaseServiceMongoImpl[models.City]
	stateCollection *mongo.Collection
}

// NewCityService tạo mới CityService
func NewCityService() (*CityService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}

	stateCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.States)
	if !exist {
		return nil, fmt.Errorf("failed to get states collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &CityService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.City](collection, sequence),
		stateCollection:      stateCollection,
	}, nil
}

// InsertOne thêm thành phố mới: kiểm tra tỉnh/bang còn hoạt động
// và ghi kèm countryId suy ra từ tỉnh/bang đó.
func (s *CityService) InsertOne(ctx context.Context, city models.City) (models.City, error) {
	var zero models.City

	if err := basesvc.RequireActiveReference(ctx, "Tỉnh/bang", global.MongoDB_ColNames.States, city.StateID); err != nil {
		return zero, err
	}

	var state struct {
		CountryID int64 `bson:"countryId"`
	}
	if err := s.stateCollection.FindOne(ctx, bson.M{"seqId": city.StateID}).Decode(&state); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	city.CountryID = state.CountryID

	return s.BaseServiceMongoImpl.InsertOne(ctx, city)
}
