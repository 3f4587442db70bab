// Package router - test đăng ký route CRUD và chuỗi middleware theo từng route.
package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResourceHandler trả về status cố định để kiểm tra route/middleware,
// không đụng tới database
type stubResourceHandler struct{}

func (stubResourceHandler) InsertOne(c fiber.Ctx) error      { return c.SendStatus(fiber.StatusCreated) }
func (stubResourceHandler) Find(c fiber.Ctx) error           { return c.SendStatus(fiber.StatusOK) }
func (stubResourceHandler) FindOneById(c fiber.Ctx) error    { return c.SendStatus(fiber.StatusOK) }
func (stubResourceHandler) UpdateById(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (stubResourceHandler) SoftDeleteById(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (stubResourceHandler) ReactivateById(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (stubResourceHandler) FindByAuth(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }

// Resource đọc công khai: các route đọc không có token vẫn phải đi qua,
// dù route ghi (đăng ký trước trên cùng prefix) có middleware auth
func TestRegisterCRUDRoutes_PublicReadWithoutToken(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	r.RegisterCRUDRoutes(app, "/countries", stubResourceHandler{}, PublicReadConfig)

	resp, err := app.Test(httptest.NewRequest("GET", "/countries/getAll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/countries/getById/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Route ghi của resource đọc công khai vẫn yêu cầu token
func TestRegisterCRUDRoutes_PublicReadWriteStillGuarded(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	r.RegisterCRUDRoutes(app, "/countries", stubResourceHandler{}, PublicReadConfig)

	resp, err := app.Test(httptest.NewRequest("POST", "/countries/create", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/countries/delete/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Resource thường: cả đọc lẫn ghi đều yêu cầu token
func TestRegisterCRUDRoutes_ReadWriteRequiresToken(t *testing.T) {
	app := fiber.New()
	r := NewRouter(app)
	r.RegisterCRUDRoutes(app, "/subscriptions", stubResourceHandler{}, ReadWriteConfig)

	resp, err := app.Test(httptest.NewRequest("GET", "/subscriptions/getAll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/subscriptions/create", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Route đăng ký lẻ với chuỗi middleware nil là route công khai
func TestRegisterRouteWithMiddleware_NilChainIsPublic(t *testing.T) {
	app := fiber.New()

	RegisterRouteWithMiddleware(app, "/states", "GET", "/getByCountryId/:id", nil,
		func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/states/getByCountryId/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
