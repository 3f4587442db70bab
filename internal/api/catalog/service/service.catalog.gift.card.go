package catalogsvc

import (
	"context"
	"fmt"

	models "food_market/internal/api/catalog/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// GiftCardService là cấu trúc chứa các phương thức liên quan đến thẻ quà tặng
type GiftCardService struct {
	*basesvc.BaseServiceMongoImpl[models.GiftCard]
}

// NewGiftCardService tạo mới GiftCardService
func NewGiftCardService() (*GiftCardService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GiftCards)
	if !exist {
		return nil, fmt.Errorf("failed to get gift_cards collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &GiftCardService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GiftCard](collection, sequence),
	}, nil
}

// InsertOne tạo thẻ quà tặng mới, kiểm tra chi nhánh phát hành và mã thẻ chưa tồn tại
func (s *GiftCardService) InsertOne(ctx context.Context, card models.GiftCard) (models.GiftCard, error) {
	var zero models.GiftCard

	if err := basesvc.RequireActiveReference(ctx, "Chi nhánh", global.MongoDB_ColNames.BusinessBranches, card.BusinessBranchID); err != nil {
		return zero, err
	}

	exists, err := s.DocumentExists(ctx, bson.M{"code": card.Code})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeBusinessOperation, "Mã thẻ quà tặng đã tồn tại", common.StatusConflict, nil)
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, card)
}
