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

// BusinessBranchHandler xử lý các request liên quan đến chi nhánh kinh doanh
type BusinessBranchHandler struct {
	*basehdl.BaseHandler[models.BusinessBranch, catalogdto.BusinessBranchCreateInput, catalogdto.BusinessBranchUpdateInput]
}

// NewBusinessBranchHandler tạo mới BusinessBranchHandler
func NewBusinessBranchHandler() (*BusinessBranchHandler, error) {
	service, err := catalogsvc.NewBusinessBranchService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business branch service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "businessTypeId", Collection: global.MongoDB_ColNames.BusinessTypes},
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.BusinessBranch, catalogdto.BusinessBranchCreateInput, catalogdto.BusinessBranchUpdateInput](service, populator)
	base.SetSearchFields("name", "description", "address")
	return &BusinessBranchHandler{BaseHandler: base}, nil
}
