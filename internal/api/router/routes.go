package router

import (
	"github.com/gofiber/fiber/v3"

	"food_market/internal/api/middleware"
)

// CRUDHandler định nghĩa interface cho các handler CRUD mà mọi resource phải có
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	SoftDeleteById(c fiber.Ctx) error
	ReactivateById(c fiber.Ctx) error
	FindByAuth(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi resource
type CRUDConfig struct {
	Create     bool // POST /create
	Find       bool // GET /getAll
	FindById   bool // GET /getById/:id
	Update     bool // PUT /update/:id
	SoftDelete bool // DELETE /delete/:id (chỉ đổi status, không xóa vật lý)
	Reactivate bool // PUT /reactivate/:id
	ByAuth     bool // GET /getByAuth
	PublicRead bool // Các operation đọc không cần token
}

// Config cho từng resource. Các domain dùng chung: ReadWriteConfig, PublicReadConfig.
var (
	// ReadWriteConfig cho phép đầy đủ các operation, mọi request đều cần token
	ReadWriteConfig = CRUDConfig{
		Create: true, Find: true, FindById: true,
		Update: true, SoftDelete: true, Reactivate: true,
		ByAuth: true, PublicRead: false,
	}

	// PublicReadConfig cho dữ liệu tra cứu (geo, loại hình kinh doanh):
	// đọc công khai, ghi vẫn cần token
	PublicReadConfig = CRUDConfig{
		Create: true, Find: true, FindById: true,
		Update: true, SoftDelete: true, Reactivate: true,
		ByAuth: false, PublicRead: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() trên group.
// LƯU Ý: với Fiber v3, handler đứng TRƯỚC và middleware là variadic phía sau
// (router.Get(path, handler, mw...)) — ngược thứ tự so với v2. Không dùng
// group .Use() cho middleware theo route: .Use() khớp mọi method dưới prefix
// và sẽ chặn cả các route đọc công khai đăng ký sau nó trên cùng prefix.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)

	switch method {
	case "GET":
		routeGroup.Get(path, handler, middlewares...)
	case "POST":
		routeGroup.Post(path, handler, middlewares...)
	case "PUT":
		routeGroup.Put(path, handler, middlewares...)
	case "DELETE":
		routeGroup.Delete(path, handler, middlewares...)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD chuẩn cho một resource:
//
//	POST   <prefix>/create
//	GET    <prefix>/getAll
//	GET    <prefix>/getById/:id
//	PUT    <prefix>/update/:id
//	DELETE <prefix>/delete/:id
//	PUT    <prefix>/reactivate/:id
//	GET    <prefix>/getByAuth
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	authMiddleware := middleware.AuthMiddleware()

	writeChain := []fiber.Handler{authMiddleware}
	readChain := []fiber.Handler{authMiddleware}
	if config.PublicRead {
		readChain = nil
	}

	if config.Create {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/create", writeChain, h.InsertOne)
	}
	if config.Find {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/getAll", readChain, h.Find)
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/getById/:id", readChain, h.FindOneById)
	}
	if config.Update {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/update/:id", writeChain, h.UpdateById)
	}
	if config.SoftDelete {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/delete/:id", writeChain, h.SoftDeleteById)
	}
	if config.Reactivate {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/reactivate/:id", writeChain, h.ReactivateById)
	}
	if config.ByAuth {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/getByAuth", []fiber.Handler{authMiddleware}, h.FindByAuth)
	}
}
