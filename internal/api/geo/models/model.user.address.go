package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAddress đại diện cho một địa chỉ người dùng lưu lại.
// StateID và CountryID được ghi kèm theo CityID để lọc không cần join.
type UserAddress struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID       int64              `json:"seqId" bson:"seqId,omitempty"`
	CityID      int64              `json:"cityId" bson:"cityId" index:"single:1"`
	StateID     int64              `json:"stateId" bson:"stateId"`
	CountryID   int64              `json:"countryId" bson:"countryId"`
	Label       string             `json:"label,omitempty" bson:"label,omitempty"` // ví dụ: Nhà riêng, Văn phòng
	AddressLine string             `json:"addressLine" bson:"addressLine"`
	PostalCode  string             `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsDefault   bool               `json:"isDefault" bson:"isDefault"`
	Status      bool               `json:"status" bson:"status"`
	CreatedBy   *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy   *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
