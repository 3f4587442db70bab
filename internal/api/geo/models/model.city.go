package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// City đại diện cho một thành phố thuộc một tỉnh/bang.
// CountryID được ghi kèm để lọc thành phố theo quốc gia không cần join qua states.
type City struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID     int64              `json:"seqId" bson:"seqId,omitempty"`
	StateID   int64              `json:"stateId" bson:"stateId" index:"single:1"`
	CountryID int64              `json:"countryId" bson:"countryId"`
	Name      string             `json:"name" bson:"name"`
	Status    bool               `json:"status" bson:"status"`
	CreatedBy *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
