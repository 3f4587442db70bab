package chathdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "food_market/internal/api/base/handler"
	basesvc "food_market/internal/api/base/service"
	chatdto "food_market/internal/api/chat/dto"
	models "food_market/internal/api/chat/models"
	chatsvc "food_market/internal/api/chat/service"
	"food_market/internal/global"
)

// NotificationHandler xử lý các request liên quan đến thông báo
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, chatdto.NotificationCreateInput, chatdto.NotificationUpdateInput]
	NotificationService *chatsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	service, err := chatsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "recipientId", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.Notification, chatdto.NotificationCreateInput, chatdto.NotificationUpdateInput](service, populator)
	base.SetSearchFields("title", "body")
	// getByAuth trả về thông báo của người nhận, không phải người tạo
	base.SetAuthField("recipientId")
	return &NotificationHandler{
		BaseHandler:         base,
		NotificationService: service,
	}, nil
}

// MarkRead đánh dấu một thông báo của người dùng đã xác thực là đã đọc
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.NotificationService.MarkRead(c.Context(), c.Params("id"), userSeq)
		h.HandleResponse(c, data, err)
		return nil
	})
}
