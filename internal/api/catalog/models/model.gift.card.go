package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GiftCard đại diện cho thẻ quà tặng phát hành bởi một chi nhánh.
// BusinessBranchID tham chiếu seqId của BusinessBranch.
type GiftCard struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID            int64              `json:"seqId" bson:"seqId,omitempty"`
	BusinessBranchID int64              `json:"businessBranchId" bson:"businessBranchId" index:"single:1"`
	Code             string             `json:"code" bson:"code" index:"unique"`
	Amount           float64            `json:"amount" bson:"amount"`
	Balance          float64            `json:"balance" bson:"balance"`
	ExpiresAt        int64              `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	RedeemedBy       *int64             `json:"redeemedBy,omitempty" bson:"redeemedBy,omitempty"`
	Status           bool               `json:"status" bson:"status"`
	CreatedBy        *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
