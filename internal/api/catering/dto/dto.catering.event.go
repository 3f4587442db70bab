// Package cateringdto - DTO của domain catering.
package cateringdto

import (
	models "food_market/internal/api/catering/models"
)

// CateringEventCreateInput đầu vào khi tạo sự kiện catering mới.
type CateringEventCreateInput struct {
	BusinessBranchID int64   `json:"businessBranchId" validate:"required,gt=0"`
	AddressID        int64   `json:"addressId" validate:"required,gt=0"`
	Title            string  `json:"title" validate:"required,min=3,max=200,no_xss"`
	Description      string  `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	EventDate        int64   `json:"eventDate" validate:"required,gt=0"`
	GuestCount       int64   `json:"guestCount" validate:"required,gt=0"`
	BudgetAmount     float64 `json:"budgetAmount,omitempty" validate:"omitempty,gte=0"`
	Currency         string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Note             string  `json:"note,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToModel chuyển DTO thành model CateringEvent
func (input CateringEventCreateInput) ToModel() models.CateringEvent {
	return models.CateringEvent{
		BusinessBranchID: input.BusinessBranchID,
		AddressID:        input.AddressID,
		Title:            input.Title,
		Description:      input.Description,
		EventDate:        input.EventDate,
		GuestCount:       input.GuestCount,
		BudgetAmount:     input.BudgetAmount,
		Currency:         input.Currency,
		Note:             input.Note,
	}
}

// CateringEventUpdateInput đầu vào khi cập nhật sự kiện catering.
// Chi nhánh không đổi sau khi tạo; địa chỉ tổ chức thì được phép đổi.
type CateringEventUpdateInput struct {
	AddressID    *int64   `json:"addressId,omitempty" validate:"omitempty,gt=0"`
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200,no_xss"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	EventDate    *int64   `json:"eventDate,omitempty" validate:"omitempty,gt=0"`
	GuestCount   *int64   `json:"guestCount,omitempty" validate:"omitempty,gt=0"`
	BudgetAmount *float64 `json:"budgetAmount,omitempty" validate:"omitempty,gte=0"`
	Currency     *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Note         *string  `json:"note,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input CateringEventUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.AddressID != nil {
		update["addressId"] = *input.AddressID
	}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.EventDate != nil {
		update["eventDate"] = *input.EventDate
	}
	if input.GuestCount != nil {
		update["guestCount"] = *input.GuestCount
	}
	if input.BudgetAmount != nil {
		update["budgetAmount"] = *input.BudgetAmount
	}
	if input.Currency != nil {
		update["currency"] = *input.Currency
	}
	if input.Note != nil {
		update["note"] = *input.Note
	}
	return update
}
