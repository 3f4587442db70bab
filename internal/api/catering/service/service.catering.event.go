// Package cateringsvc - service của domain catering.
package cateringsvc

import (
	"context"
	"fmt"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/catering/models"
	"food_market/internal/common"
	"food_market/internal/global"
	"food_market/internal/utility"
)

// CateringEventService là cấu trúc chứa các phương thức liên quan đến sự kiện catering
type CateringEventService struct {
	*basesvc.BaseServiceMongoImpl[models.CateringEvent]
}

// NewCateringEventService tạo mới CateringEventService
func NewCateringEventService() (*CateringEventService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CateringEvents)
	if !exist {
		return nil, fmt.Errorf("failed to get catering_events collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &CateringEventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CateringEvent](collection, sequence),
	}, nil
}

// InsertOne tạo sự kiện catering mới sau khi kiểm tra chi nhánh và địa chỉ tổ chức
func (s *CateringEventService) InsertOne(ctx context.Context, event models.CateringEvent) (models.CateringEvent, error) {
	var zero models.CateringEvent

	if err := basesvc.RequireActiveReference(ctx, "Chi nhánh", global.MongoDB_ColNames.BusinessBranches, event.BusinessBranchID); err != nil {
		return zero, err
	}
	if err := basesvc.RequireActiveReference(ctx, "Địa chỉ", global.MongoDB_ColNames.UserAddresses, event.AddressID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, event)
}

// UpdateByIdentifier cập nhật sự kiện; nếu đổi địa chỉ tổ chức thì địa chỉ mới
// phải tồn tại và đang hoạt động.
func (s *CateringEventService) UpdateByIdentifier(ctx context.Context, identifier string, update interface{}) (models.CateringEvent, error) {
	var zero models.CateringEvent

	if updateMap, ok := update.(map[string]interface{}); ok {
		if raw, exists := updateMap["addressId"]; exists {
			if seqId, ok := utility.ToInt64(raw); ok {
				if err := basesvc.RequireActiveReference(ctx, "Địa chỉ", global.MongoDB_ColNames.UserAddresses, seqId); err != nil {
					return zero, err
				}
			}
		}
	}

	return s.BaseServiceMongoImpl.UpdateByIdentifier(ctx, identifier, update)
}
