// Package chathdl - handler của domain chat.
package chathdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "food_market/internal/api/base/handler"
	basemodels "food_market/internal/api/base/models"
	basesvc "food_market/internal/api/base/service"
	chatdto "food_market/internal/api/chat/dto"
	models "food_market/internal/api/chat/models"
	chatsvc "food_market/internal/api/chat/service"
	"food_market/internal/common"
	"food_market/internal/global"
)

// ChatMessageHandler xử lý các request liên quan đến tin nhắn
type ChatMessageHandler struct {
	*basehdl.BaseHandler[models.ChatMessage, chatdto.ChatMessageCreateInput, chatdto.ChatMessageUpdateInput]
	ChatMessageService *chatsvc.ChatMessageService
}

// NewChatMessageHandler tạo mới ChatMessageHandler
func NewChatMessageHandler() (*ChatMessageHandler, error) {
	service, err := chatsvc.NewChatMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message service: %v", err)
	}

	populator := basesvc.NewPopulator([]basesvc.ReferenceSpec{
		{Field: "senderId", Collection: global.MongoDB_ColNames.Users},
		{Field: "receiverId", Collection: global.MongoDB_ColNames.Users},
	}, nil)

	base := basehdl.NewBaseHandler[models.ChatMessage, chatdto.ChatMessageCreateInput, chatdto.ChatMessageUpdateInput](service, populator)
	base.SetSearchFields("content")
	base.SetAuthField("senderId")
	return &ChatMessageHandler{
		BaseHandler:        base,
		ChatMessageService: service,
	}, nil
}

// InsertOne gửi tin nhắn mới. Người gửi luôn là người dùng đã xác thực,
// không nhận senderId từ client.
func (h *ChatMessageHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input chatdto.ChatMessageCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if input.ReceiverID == userSeq {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Không thể gửi tin nhắn cho chính mình",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		message := input.ToModel()
		message.SenderID = userSeq
		message.CreatedBy = &userSeq

		data, err := h.ChatMessageService.InsertOne(c.Context(), message)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreatedResponse(c, data)
		return nil
	})
}

// GetConversation trả về hội thoại giữa người dùng đã xác thực và một người dùng khác
// (định danh bằng seqId), mới nhất trước, có phân trang.
func (h *ChatMessageHandler) GetConversation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		otherSeq, err := strconv.ParseInt(c.Params("seqId"), 10, 64)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidIdentifier)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.ChatMessageService.FindConversation(c.Context(), userSeq, otherSeq, page, limit)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		items := h.PopulateItems(c, result.Items)
		h.HandleListResponse(c, items, basemodels.NewPagination(result.Page, result.Limit, result.Total))
		return nil
	})
}
