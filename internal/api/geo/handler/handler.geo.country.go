// Package geohdl - handler của domain geo.
package geohdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	geodto "food_market/internal/api/geo/dto"
	models "food_market/internal/api/geo/models"
	geosvc "food_market/internal/api/geo/service"
)

// CountryHandler xử lý các request liên quan đến quốc gia
type CountryHandler struct {
	*basehdl.BaseHandler[models.Country, geodto.CountryCreateInput, geodto.CountryUpdateInput]
}

// NewCountryHandler tạo mới CountryHandler
func NewCountryHandler() (*CountryHandler, error) {
	service, err := geosvc.NewCountryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create country service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.Country, geodto.CountryCreateInput, geodto.CountryUpdateInput](service, nil)
	base.SetSearchFields("name", "code")
	return &CountryHandler{BaseHandler: base}, nil
}
