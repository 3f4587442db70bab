// Package authhdl - handler của domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authdto "food_market/internal/api/auth/dto"
	models "food_market/internal/api/auth/models"
	authsvc "food_market/internal/api/auth/service"
	basehdl "food_market/internal/api/base/handler"
	"food_market/internal/common"
)

// UserHandler xử lý các request liên quan đến User
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	base := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService, nil)
	base.SetSearchFields("name", "email")
	return &UserHandler{
		BaseHandler: base,
		UserService: userService,
	}, nil
}

// Register đăng ký tài khoản mới (không cần token).
// Dùng chung DTO với create nhưng role luôn là customer.
func (h *UserHandler) Register(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự đăng ký thì không được chọn role
		input.Role = models.UserRoleCustomer

		data, err := h.UserService.InsertOne(c.Context(), input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreatedResponse(c, data)
		return nil
	})
}

// Login đăng nhập và trả về JWT token
func (h *UserHandler) Login(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.UserService.Login(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetMyInfo trả về thông tin của người dùng đã xác thực
func (h *UserHandler) GetMyInfo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.UserService.FindOne(c.Context(), bson.M{"seqId": userSeq}, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ChangePassword đổi mật khẩu của người dùng đã xác thực
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.UserService.ChangePassword(c.Context(), userSeq, input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
