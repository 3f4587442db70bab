package catalogsvc

import (
	"context"
	"fmt"

	models "food_market/internal/api/catalog/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký gói dịch vụ
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](collection, sequence),
	}, nil
}

// InsertOne tạo subscription mới sau khi kiểm tra cả gói dịch vụ và chi nhánh còn hoạt động
func (s *SubscriptionService) InsertOne(ctx context.Context, subscription models.Subscription) (models.Subscription, error) {
	var zero models.Subscription

	if err := basesvc.RequireActiveReference(ctx, "Gói dịch vụ", global.MongoDB_ColNames.Plans, subscription.PlanID); err != nil {
		return zero, err
	}
	if err := basesvc.RequireActiveReference(ctx, "Chi nhánh", global.MongoDB_ColNames.BusinessBranches, subscription.BusinessBranchID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, subscription)
}
