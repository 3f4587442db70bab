package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription đại diện cho một lượt đăng ký gói dịch vụ của chi nhánh.
// PlanID và BusinessBranchID tham chiếu seqId của Plan và BusinessBranch.
type Subscription struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID            int64              `json:"seqId" bson:"seqId,omitempty"`
	PlanID           int64              `json:"planId" bson:"planId" index:"single:1"`
	BusinessBranchID int64              `json:"businessBranchId" bson:"businessBranchId" index:"single:1"`
	StartAt          int64              `json:"startAt" bson:"startAt"`
	EndAt            int64              `json:"endAt" bson:"endAt"`
	PaymentRef       string             `json:"paymentRef,omitempty" bson:"paymentRef,omitempty"`
	AutoRenew        bool               `json:"autoRenew" bson:"autoRenew"`
	Status           bool               `json:"status" bson:"status"`
	CreatedBy        *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
