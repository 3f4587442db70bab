// Package models - các model thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessType đại diện cho loại hình kinh doanh (nhà hàng, catering, vendor...).
type BusinessType struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID       int64              `json:"seqId" bson:"seqId,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string             `json:"icon,omitempty" bson:"icon,omitempty"`
	Status      bool               `json:"status" bson:"status"`
	CreatedBy   *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy   *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
