package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan đại diện cho gói dịch vụ mà chi nhánh kinh doanh có thể đăng ký.
type Plan struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID        int64              `json:"seqId" bson:"seqId,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64            `json:"price" bson:"price"`
	Currency     string             `json:"currency" bson:"currency"`
	DurationDays int64              `json:"durationDays" bson:"durationDays"`
	Features     []string           `json:"features,omitempty" bson:"features,omitempty"`
	Status       bool               `json:"status" bson:"status"`
	CreatedBy    *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy    *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
