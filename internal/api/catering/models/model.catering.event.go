// Package models - các cấu trúc dữ liệu của domain catering.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CateringEvent đại diện cho một sự kiện catering mà khách hàng đặt với chi nhánh.
// BusinessBranchID và AddressID tham chiếu seqId của chi nhánh và địa chỉ tổ chức.
type CateringEvent struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID            int64              `json:"seqId" bson:"seqId,omitempty"`
	BusinessBranchID int64              `json:"businessBranchId" bson:"businessBranchId" index:"single:1"`
	AddressID        int64              `json:"addressId" bson:"addressId"`
	Title            string             `json:"title" bson:"title"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	EventDate        int64              `json:"eventDate" bson:"eventDate"`
	GuestCount       int64              `json:"guestCount" bson:"guestCount"`
	BudgetAmount     float64            `json:"budgetAmount,omitempty" bson:"budgetAmount,omitempty"`
	Currency         string             `json:"currency,omitempty" bson:"currency,omitempty"`
	Note             string             `json:"note,omitempty" bson:"note,omitempty"`
	Status           bool               `json:"status" bson:"status"`
	CreatedBy        *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
