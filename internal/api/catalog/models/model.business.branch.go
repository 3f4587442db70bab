package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessBranch đại diện cho một chi nhánh kinh doanh (nhà hàng, vendor, đơn vị catering).
// BusinessTypeID tham chiếu seqId của BusinessType, được populate khi trả về client.
type BusinessBranch struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID          int64              `json:"seqId" bson:"seqId,omitempty"`
	BusinessTypeID int64              `json:"businessTypeId" bson:"businessTypeId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	LogoURL        string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	OpeningHours   string             `json:"openingHours,omitempty" bson:"openingHours,omitempty"`
	Status         bool               `json:"status" bson:"status"`
	CreatedBy      *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy      *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
