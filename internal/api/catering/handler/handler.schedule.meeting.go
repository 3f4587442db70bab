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

// ScheduleMeetingHandler xử lý các request liên quan đến lịch hẹn
type ScheduleMeetingHandler struct {
	*basehdl.BaseHandler[models.ScheduleMeeting, cateringdto.ScheduleMeetingCreateInput, cateringdto.ScheduleMeetingUpdateInput]
}

// NewScheduleMeetingHandler tạo mới ScheduleMeetingHandler
func NewScheduleMeetingHandler() (*ScheduleMeetingHandler, error) {
	service, err := cateringsvc.NewScheduleMeetingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule meeting service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "cateringEventId", Collection: global.MongoDB_ColNames.CateringEvents},
		{Field: "createdBy", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.ScheduleMeeting, cateringdto.ScheduleMeetingCreateInput, cateringdto.ScheduleMeetingUpdateInput](service, populator)
	base.SetSearchFields("location", "note")
	return &ScheduleMeetingHandler{BaseHandler: base}, nil
}
