// Package georouter - đăng ký route cho domain geo.
package georouter

import (
	"github.com/gofiber/fiber/v3"

	geohdl "food_market/internal/api/geo/handler"
	"food_market/internal/api/middleware"
	"food_market/internal/api/router"
)

// RegisterRoutes đăng ký các route của domain geo:
// dữ liệu tra cứu (quốc gia, tỉnh/bang, thành phố) đọc công khai,
// địa chỉ người dùng luôn cần token.
func RegisterRoutes(r *router.Router, api fiber.Router) error {
	countryHandler, err := geohdl.NewCountryHandler()
	if err != nil {
		return err
	}
	stateHandler, err := geohdl.NewStateHandler()
	if err != nil {
		return err
	}
	cityHandler, err := geohdl.NewCityHandler()
	if err != nil {
		return err
	}
	addressHandler, err := geohdl.NewUserAddressHandler()
	if err != nil {
		return err
	}

	authChain := []fiber.Handler{middleware.AuthMiddleware()}

	r.RegisterCRUDRoutes(api, "/countries", countryHandler, router.PublicReadConfig)
	r.RegisterCRUDRoutes(api, "/states", stateHandler, router.PublicReadConfig)
	r.RegisterCRUDRoutes(api, "/cities", cityHandler, router.PublicReadConfig)
	r.RegisterCRUDRoutes(api, "/user-addresses", addressHandler, router.ReadWriteConfig)

	// Danh sách theo bản ghi cha; dữ liệu tra cứu vẫn đọc công khai
	router.RegisterRouteWithMiddleware(api, "/states", "GET", "/getByCountryId/:id", nil,
		stateHandler.FindByParentFactory("countryId"))
	router.RegisterRouteWithMiddleware(api, "/cities", "GET", "/getByStateId/:id", nil,
		cityHandler.FindByParentFactory("stateId"))
	router.RegisterRouteWithMiddleware(api, "/user-addresses", "GET", "/getByCityId/:id", authChain,
		addressHandler.FindByParentFactory("cityId"))

	return nil
}
