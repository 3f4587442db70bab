package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRequest đại diện cho một lời mời khách hàng đánh giá chi nhánh.
// CustomerID tham chiếu seqId của User nhận lời mời.
type ReviewRequest struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID            int64              `json:"seqId" bson:"seqId,omitempty"`
	BusinessBranchID int64              `json:"businessBranchId" bson:"businessBranchId" index:"single:1"`
	CustomerID       int64              `json:"customerId" bson:"customerId"`
	RecipientEmail   string             `json:"recipientEmail" bson:"recipientEmail"`
	Message          string             `json:"message,omitempty" bson:"message,omitempty"`
	SentAt           int64              `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
	Status           bool               `json:"status" bson:"status"`
	CreatedBy        *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
