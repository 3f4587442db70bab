package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"food_market/internal/common"
	"food_market/internal/logger"

	basemodels "food_market/internal/api/base/models"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để các message tiếng Việt hiển thị đúng encoding.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// successEnvelope dựng phần khung chung của response thành công
func successEnvelope(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success":   true,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().Format(time.RFC3339),
	}
}

// errorEnvelope dựng response lỗi thống nhất {success, message, errors, timestamp};
// code là mã lỗi chi tiết kèm theo cho client nào cần phân loại sâu hơn HTTP status
func errorEnvelope(code string, message string, details interface{}) fiber.Map {
	return fiber.Map{
		"success":   false,
		"code":      code,
		"message":   message,
		"errors":    details,
		"timestamp": time.Now().Format(time.RFC3339),
	}
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic trong handler")

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format envelope thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		HandleError(c, err)
		return
	}
	JSONResponse(c, common.StatusOK, successEnvelope(common.MsgSuccess, data))
}

// HandleCreatedResponse trả về response 201 cho thao tác tạo mới thành công
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreatedResponse(c fiber.Ctx, data interface{}) {
	JSONResponse(c, common.StatusCreated, successEnvelope(common.MsgCreated, data))
}

// HandleListResponse trả về response danh sách kèm metadata phân trang
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleListResponse(c fiber.Ctx, items interface{}, pagination basemodels.Pagination) {
	envelope := successEnvelope(common.MsgSuccess, items)
	envelope["pagination"] = pagination
	JSONResponse(c, common.StatusOK, envelope)
}

// HandleError trả về response lỗi thống nhất (dùng được ngoài BaseHandler)
func HandleError(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, errorEnvelope(customErr.Code.Code, customErr.Message, customErr.Details))
		return
	}
	JSONResponse(c, common.StatusInternalServerError, errorEnvelope(common.ErrCodeInternalServer.Code, err.Error(), nil))
}
