package cataloghdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	catalogdto "food_market/internal/api/catalog/dto"
	models "food_market/internal/api/catalog/models"
	catalogsvc "food_market/internal/api/catalog/service"
	"food_market/internal/global"
)

// GiftCardHandler xử lý các request liên quan đến thẻ quà tặng
type GiftCardHandler struct {
	*basehdl.BaseHandler[models.GiftCard, catalogdto.GiftCardCreateInput, catalogdto.GiftCardUpdateInput]
}

// NewGiftCardHandler tạo mới GiftCardHandler
func NewGiftCardHandler() (*GiftCardHandler, error) {
	service, err := catalogsvc.NewGiftCardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create gift card service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "businessBranchId", Collection: global.MongoDB_ColNames.BusinessBranches},
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.GiftCard, catalogdto.GiftCardCreateInput, catalogdto.GiftCardUpdateInput](service, populator)
	base.SetSearchFields("code")
	return &GiftCardHandler{BaseHandler: base}, nil
}
