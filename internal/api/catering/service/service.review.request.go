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

// ReviewRequestService là cấu trúc chứa các phương thức liên quan đến lời mời đánh giá
type ReviewRequestService struct {
	*basesvc.BaseServiceMongoImpl[models.ReviewRequest]
	emailSender delivery.EmailSender
}

// NewReviewRequestService tạo mới ReviewRequestService
func NewReviewRequestService() (*ReviewRequestService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReviewRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get review_requests collection: %v", common.ErrNotFound)
	}

	sequence, err := basesvc.NewSequenceServiceFromRegistry()
	if err != nil {
		return nil, err
	}

	return &ReviewRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ReviewRequest](collection, sequence),
		emailSender:          delivery.NewSMTPEmailSender(),
	}, nil
}

// InsertOne gửi lời mời đánh giá: kiểm tra chi nhánh và khách hàng còn hoạt động,
// ghi nhận thời điểm gửi rồi gửi email mời (không chặn request nếu gửi lỗi).
func (s *ReviewRequestService) InsertOne(ctx context.Context, request models.ReviewRequest) (models.ReviewRequest, error) {
	var zero models.ReviewRequest

	if err := basesvc.RequireActiveReference(ctx, "Chi nhánh", global.MongoDB_ColNames.BusinessBranches, request.BusinessBranchID); err != nil {
		return zero, err
	}
	if err := basesvc.RequireActiveReference(ctx, "Khách hàng", global.MongoDB_ColNames.Users, request.CustomerID); err != nil {
		return zero, err
	}

	request.SentAt = time.Now().UnixMilli()

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, request)
	if err != nil {
		return zero, err
	}

	body := "<p>Bạn vừa sử dụng dịch vụ của chúng tôi. Hãy dành chút thời gian để lại đánh giá nhé!</p>"
	if created.Message != "" {
		body += fmt.Sprintf("<p>%s</p>", created.Message)
	}
	delivery.SendAsync(s.emailSender, delivery.EmailMessage{
		Recipient: created.RecipientEmail,
		Subject:   "Mời bạn đánh giá dịch vụ",
		Body:      body,
	})

	return created, nil
}
