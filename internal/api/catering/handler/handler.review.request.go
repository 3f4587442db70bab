package cateringhdl

import (
	"fmt"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	cateringdto "food_market/internal/api/catering/dto"
	models "food_market/internal/api/catering/models"
	cateringsvc "food_market/internal/api/catering/service"
	"food_market/internal/global"
)

// ReviewRequestHandler xử lý các request liên quan đến lời mời đánh giá
type ReviewRequestHandler struct {
	*basehdl.BaseHandler[models.ReviewRequest, cateringdto.ReviewRequestCreateInput, cateringdto.ReviewRequestUpdateInput]
}

// NewReviewRequestHandler tạo mới ReviewRequestHandler
func NewReviewRequestHandler() (*ReviewRequestHandler, error) {
	service, err := cateringsvc.NewReviewRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review request service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "businessBranchId", Collection: global.MongoDB_ColNames.BusinessBranches},
		{Field: "customerId", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.ReviewRequest, cateringdto.ReviewRequestCreateInput, cateringdto.ReviewRequestUpdateInput](service, populator)
	base.SetSearchFields("recipientEmail", "message")
	return &ReviewRequestHandler{BaseHandler: base}, nil
}
