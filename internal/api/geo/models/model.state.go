package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// State đại diện cho một tỉnh/bang thuộc một quốc gia.
type State struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID     int64              `json:"seqId" bson:"seqId,omitempty"`
	CountryID int64              `json:"countryId" bson:"countryId" index:"single:1"`
	Name      string             `json:"name" bson:"name"`
	Code      string             `json:"code,omitempty" bson:"code,omitempty"`
	Status    bool               `json:"status" bson:"status"`
	CreatedBy *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
