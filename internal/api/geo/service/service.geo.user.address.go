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
	"food_market/internal/utility"
)

// UserAddressService là cấu trúc chứa các phương thức liên quan đến địa chỉ người dùng
type UserAddressService struct {
	*basesvc.BaseServiceMongoImpl[models.UserAddress]
	cityCollection *mongo.Collection
}

// NewUserAddressService tạo mới UserAddressService
func NewUserAddressService() (*UserAddressService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.UserAddresses)
	if !exist {
		return nil, fmt.Errorf("failed to get user_addresses collection: %v", common.ErrNotFound)
	}

	cityCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cities)
	if !exist {
		return nil, fmt.Errorf("failed to get cities collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &UserAddressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.UserAddress](collection, sequence),
		cityCollection:       cityCollection,
	}, nil
}

// lookupCityAncestors đọc stateId và countryId của một thành phố theo seqId
func (s *UserAddressService) lookupCityAncestors(ctx context.Context, citySeqID int64) (stateID int64, countryID int64, err error) {
	var city struct {
		StateID   int64 `bson:"stateId"`
		CountryID int64 `bson:"countryId"`
	}
	if err := s.cityCollection.FindOne(ctx, bson.M{"seqId": citySeqID}).Decode(&city); err != nil {
		return 0, 0, common.ConvertMongoError(err)
	}
	return city.StateID, city.CountryID, nil
}

// InsertOne lưu địa chỉ mới: kiểm tra thành phố còn hoạt động, ghi kèm
// stateId/countryId suy ra từ thành phố. Nếu là địa chỉ mặc định thì bỏ cờ
// mặc định ở các địa chỉ khác của cùng người dùng.
func (s *UserAddressService) InsertOne(ctx context.Context, address models.UserAddress) (models.UserAddress, error) {
	var zero models.UserAddress

	if err := basesvc.RequireActiveReference(ctx, "Thành phố", global.MongoDB_ColNames.Cities, address.CityID); err != nil {
		return zero, err
	}

	stateID, countryID, err := s.lookupCityAncestors(ctx, address.CityID)
	if err != nil {
		return zero, err
	}
	address.StateID = stateID
	address.CountryID = countryID

	if address.IsDefault && address.CreatedBy != nil {
		_, err := s.Collection().UpdateMany(ctx,
			bson.M{"createdBy": *address.CreatedBy, "isDefault": true},
			bson.M{"$set": bson.M{"isDefault": false}},
		)
		if err != nil {
			return zero, common.ConvertMongoError(err)
		}
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, address)
}

// UpdateByIdentifier cập nhật địa chỉ; nếu đổi thành phố thì thành phố mới
// phải còn hoạt động và stateId/countryId được suy ra lại.
func (s *UserAddressService) UpdateByIdentifier(ctx context.Context, identifier string, update interface{}) (models.UserAddress, error) {
	var zero models.UserAddress

	if updateMap, ok := update.(map[string]interface{}); ok {
		if raw, exists := updateMap["cityId"]; exists {
			if citySeqID, ok := utility.ToInt64(raw); ok {
				if err := basesvc.RequireActiveReference(ctx, "Thành phố", global.MongoDB_ColNames.Cities, citySeqID); err != nil {
					return zero, err
				}
				stateID, countryID, err := s.lookupCityAncestors(ctx, citySeqID)
				if err != nil {
					return zero, err
				}
				updateMap["stateId"] = stateID
				updateMap["countryId"] = countryID
			}
		}
	}

	return s.BaseServiceMongoImpl.UpdateByIdentifier(ctx, identifier, update)
}
