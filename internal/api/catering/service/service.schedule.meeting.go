package cateringsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "food_market/internal/api/base/service"
	models "food_market/internal/api/catering/models"
	"food_market/internal/common"
	"food_market/internal/delivery"
	"food_market/internal/global"
)

// ScheduleMeetingService là cấu trúc chứa các phương thức liên quan đến lịch hẹn
type ScheduleMeetingService struct {
	*basesvc.BaseServiceMongoImpl[models.ScheduleMeeting]
	emailSender delivery.EmailSender
}

// NewScheduleMeetingService tạo mới ScheduleMeetingService
func NewScheduleMeetingService() (*ScheduleMeetingService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ScheduleMeetings)
	if !exist {
		return nil, fmt.Errorf("failed to get schedule_meetings collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &ScheduleMeetingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ScheduleMeeting](collection, sequence),
		emailSender:          delivery.NewSMTPEmailSender(),
	}, nil
}

// InsertOne đặt lịch hẹn mới sau khi kiểm tra sự kiện còn hoạt động,
// rồi gửi email xác nhận cho người liên hệ (không chặn request nếu gửi lỗi).
func (s *ScheduleMeetingService) InsertOne(ctx context.Context, meeting models.ScheduleMeeting) (models.ScheduleMeeting, error) {
	var zero models.ScheduleMeeting

	if err := basesvc.RequireActiveReference(ctx, "Sự kiện catering", global.MongoDB_ColNames.CateringEvents, meeting.CateringEventID); err != nil {
		return zero, err
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, meeting)
	if err != nil {
		return zero, err
	}

	if created.ContactEmail != "" {
		delivery.SendAsync(s.emailSender, confirmationEmail(created))
	}

	return created, nil
}

// confirmationEmail dựng email xác nhận lịch hẹn
func confirmationEmail(meeting models.ScheduleMeeting) delivery.EmailMessage {
	meetingTime := time.UnixMilli(meeting.MeetingAt).Format("15:04 02/01/2006")
	body := fmt.Sprintf(
		"<p>Lịch hẹn của bạn đã được xác nhận.</p><p>Thời gian: <b>%s</b></p>",
		meetingTime,
	)
	if meeting.Location != "" {
		body += fmt.Sprintf("<p>Địa điểm: %s</p>", meeting.Location)
	}

	return delivery.EmailMessage{
		Recipient: meeting.ContactEmail,
		Subject:   "Xác nhận lịch hẹn",
		Body:      body,
	}
}
