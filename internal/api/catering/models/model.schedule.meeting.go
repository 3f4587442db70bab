package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleMeeting đại diện cho một buổi hẹn trao đổi về sự kiện catering.
// CateringEventID tham chiếu seqId của CateringEvent.
type ScheduleMeeting struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SeqID           int64              `json:"seqId" bson:"seqId,omitempty"`
	CateringEventID int64              `json:"cateringEventId" bson:"cateringEventId" index:"single:1"`
	MeetingAt       int64              `json:"meetingAt" bson:"meetingAt"`
	Location        string             `json:"location,omitempty" bson:"location,omitempty"`
	ContactEmail    string             `json:"contactEmail" bson:"contactEmail"`
	Note            string             `json:"note,omitempty" bson:"note,omitempty"`
	Status          bool               `json:"status" bson:"status"`
	CreatedBy       *int64             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy       *int64             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
