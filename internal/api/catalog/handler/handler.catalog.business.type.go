// Package cataloghdl - handler của domain catalog.
package cataloghdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	catalogdto "food_market/internal/api/catalog/dto"
	models "food_market/internal/api/catalog/models"
	catalogsvc "food_market/internal/api/catalog/service"
)

// BusinessTypeHandler xử lý các request liên quan đến loại hình kinh doanh
type BusinessTypeHandler struct {
	*basehdl.BaseHandler[models.BusinessType, catalogdto.BusinessTypeCreateInput, catalogdto.BusinessTypeUpdateInput]
}

// NewBusinessTypeHandler tạo mới BusinessTypeHandler
func NewBusinessTypeHandler() (*BusinessTypeHandler, error) {
	service, err := catalogsvc.NewBusinessTypeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business type service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.BusinessType, catalogdto.BusinessTypeCreateInput, catalogdto.BusinessTypeUpdateInput](service, nil)
	base.SetSearchFields("name", "description")
	return &BusinessTypeHandler{BaseHandler: base}, nil
}
