package cateringdto

import (
	models "food_market/internal/api/catering/models"
)

// ScheduleMeetingCreateInput đầu vào khi đặt lịch hẹn cho sự kiện catering.
type ScheduleMeetingCreateInput struct {
	CateringEventID int64  `json:"cateringEventId" validate:"required,gt=0"`
	MeetingAt       int64  `json:"meetingAt" validate:"required,gt=0"`
	Location        string `json:"location,omitempty" validate:"omitempty,max=300,no_xss"`
	ContactEmail    string `json:"contactEmail" validate:"required,email"`
	Note            string `json:"note,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToModel chuyển DTO thành model ScheduleMeeting
func (input ScheduleMeetingCreateInput) ToModel() models.ScheduleMeeting {
	return models.ScheduleMeeting{
		CateringEventID: input.CateringEventID,
		MeetingAt:       input.MeetingAt,
		Location:        input.Location,
		ContactEmail:    input.ContactEmail,
		Note:            input.Note,
	}
}

// ScheduleMeetingUpdateInput đầu vào khi dời hoặc bổ sung thông tin lịch hẹn.
// Sự kiện gốc không đổi sau khi tạo.
type ScheduleMeetingUpdateInput struct {
	MeetingAt    *int64  `json:"meetingAt,omitempty" validate:"omitempty,gt=0"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=300,no_xss"`
	ContactEmail *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=1000,no_xss"`
}

// ToUpdate xuất các field có giá trị thành map $set
func (input ScheduleMeetingUpdateInput) ToUpdate() map[string]interface{} {
	update := make(map[string]interface{})
	if input.MeetingAt != nil {
		update["meetingAt"] = *input.MeetingAt
	}
	if input.Location != nil {
		update["location"] = *input.Location
	}
	if input.ContactEmail != nil {
		update["contactEmail"] = *input.ContactEmail
	}
	if input.Note != nil {
		update["note"] = *input.Note
	}
	return update
}
