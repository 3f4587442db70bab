// Package authdto - các DTO vào/ra của domain auth.
package authdto

import (
	models "food_market/internal/api/auth/models"
)

// UserCreateInput đầu vào khi tạo người dùng.
type UserCreateInput struct {
	Name      string `json:"name" validate:"required,no_xss"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=customer vendor admin"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// ToModel chuyển DTO thành model User. Password vẫn là plaintext,
// service chịu trách nhiệm hash trước khi lưu.
func (input UserCreateInput) ToModel() models.User {
	role := input.Role
	if role == "" {
		role = models.UserRoleCustomer
	}
	return models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Phone:     input.Phone,
		Role:      role,
		AvatarURL: input.AvatarURL,
	}
}

// UserUpdateInput đầu vào khi cập nhật người dùng.
// Email, password và role không sửa qua update thông thường.
type UserUpdateInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input UserUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.AvatarURL != nil {
		update["avatarUrl"] = *input.AvatarURL
	}
	return update
}

// LoginInput đầu vào khi đăng nhập.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse kết quả đăng nhập trả về cho client.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// ChangePasswordInput đầu vào khi đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
