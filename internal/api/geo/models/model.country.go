// Package models - các cấu trúc dữ liệu của domain geo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Country đại diện cho một quốc gia trong dữ liệu tra cứu địa lý.
type Country struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID     int64              `json:"seqId" bson:"seqId,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Code      string             `json:"code" bson:"code"` // mã ISO 3166-1 alpha-2
	PhoneCode string             `json:"phoneCode,omitempty" bson:"phoneCode,omitempty"`
	Currency  string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Status    bool               `json:"status" bson:"status"`
	CreatedBy *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
