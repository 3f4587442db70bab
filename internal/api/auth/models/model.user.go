// Package models - các model thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole các vai trò của người dùng trong hệ thống
const (
	UserRoleCustomer = "customer" // Khách hàng đặt món / đặt catering
	UserRoleVendor   = "vendor"   // Chủ chi nhánh kinh doanh
	UserRoleAdmin    = "admin"    // Quản trị hệ thống
)

// User đại diện cho người dùng của hệ thống.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID     int64              `json:"seqId" bson:"seqId,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string             `json:"role" bson:"role" index:"single:1"`
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Status    bool               `json:"status" bson:"status"`
	CreatedBy *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
