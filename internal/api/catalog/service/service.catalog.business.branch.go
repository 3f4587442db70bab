package catalogsvc

import (
	"context"
	"fmt"

	models "food_market/internal/api/catalog/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
	"food_market/internal/utility"
)

// BusinessBranchService là cấu trúc chứa các phương thức liên quan đến chi nhánh kinh doanh
type BusinessBranchService struct {
	*basesvc.BaseServiceMongoImpl[models.BusinessBranch]
}

// NewBusinessBranchService tạo mới BusinessBranchService
func NewBusinessBranchService() (*BusinessBranchService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BusinessBranches)
	if !exist {
		return nil, fmt.Errorf("failed to get business_branches collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &BusinessBranchService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.BusinessBranch](collection, sequence),
	}, nil
}

// InsertOne tạo chi nhánh mới sau khi kiểm tra loại hình kinh doanh còn hoạt động
func (s *BusinessBranchService) InsertOne(ctx context.Context, branch models.BusinessBranch) (models.BusinessBranch, error) {
	var zero models.BusinessBranch

	if err := basesvc.RequireActiveReference(ctx, "Loại hình kinh doanh", global.MongoDB_ColNames.BusinessTypes, branch.BusinessTypeID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, branch)
}

// UpdateByIdentifier cập nhật chi nhánh; nếu đổi loại hình kinh doanh thì
// loại hình mới phải tồn tại và đang hoạt động.
func (s *BusinessBranchService) UpdateByIdentifier(ctx context.Context, identifier string, update interface{}) (models.BusinessBranch, error) {
	var zero models.BusinessBranch

	if updateMap, ok := update.(map[string]interface{}); ok {
		if raw, exists := updateMap["businessTypeId"]; exists {
			if seqId, ok := utility.ToInt64(raw); ok {
				if err := basesvc.RequireActiveReference(ctx, "Loại hình kinh doanh", global.MongoDB_ColNames.BusinessTypes, seqId); err != nil {
					return zero, err
				}
			}
		}
	}

	return s.BaseServiceMongoImpl.UpdateByIdentifier(ctx, identifier, update)
}
