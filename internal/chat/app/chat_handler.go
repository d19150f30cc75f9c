package app

import (
	"entrust_service/pkg/middlewares"
	"entrust_service/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler REST endpoints of the chat feature
type ChatHandler struct {
	roomUC       *RoomUseCase
	messageUC    *MessageUseCase
	defaultLimit int64
}

// NewChatHandler create ChatHandler, defaultLimit is the upper index used when a list has no limit
func NewChatHandler(roomUC *RoomUseCase, messageUC *MessageUseCase, defaultLimit int64) *ChatHandler {
	return &ChatHandler{
		roomUC:       roomUC,
		messageUC:    messageUC,
		defaultLimit: defaultLimit,
	}
}

type openRoomReq struct {
	PeerID int64 `json:"peer_id" validate:"required,gt=0"`
}

type listMessagesReq struct {
	Limit  *int64 `query:"limit" validate:"omitempty,min=-1"`
	Offset *int64 `query:"offset" validate:"omitempty,min=0"`
}

type sendMessageReq struct {
	Message string `json:"message" validate:"required"`
}

// OpenRoom 建立(或取得)與 peer 的聊天室
// @Summary Open a two-party room
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body openRoomReq true "peer"
// @Success 200 {object} domain.ChatWith
// @Router /chat/rooms [post]
func (h *ChatHandler) OpenRoom(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	var req openRoomReq
	if err := validate.Body(c, &req); err != nil {
		return err
	}

	room, err := h.roomUC.Open(c.UserContext(), uid, req.PeerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": room})
}

// Rooms 列出自己的聊天室
// @Summary List rooms of the caller
// @Tags Chat
// @Produce json
// @Success 200 {array} domain.ChatWith
// @Router /chat/rooms [get]
func (h *ChatHandler) Rooms(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	rooms, err := h.roomUC.Rooms(c.UserContext(), uid)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": rooms})
}

// ListMessages 讀取訊息, limit/offset are redis LRANGE stop/start indexes
// @Summary List messages of a room
// @Tags Chat
// @Produce json
// @Param roomId path string true "room id"
// @Param limit query int false "inclusive upper index"
// @Param offset query int false "lower index"
// @Success 200 {array} domain.MessageRecord
// @Router /chat/rooms/{roomId}/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	var req listMessagesReq
	if err := validate.Query(c, &req); err != nil {
		return err
	}
	limit, offset := h.defaultLimit, int64(0)
	if req.Limit != nil {
		limit = *req.Limit
	}
	if req.Offset != nil {
		offset = *req.Offset
	}

	records, err := h.messageUC.List(c.UserContext(), c.Params("roomId"), uid, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": records})
}

// SendMessage 發送訊息
// @Summary Append a message to a room
// @Tags Chat
// @Accept json
// @Produce json
// @Param roomId path string true "room id"
// @Param request body sendMessageReq true "message"
// @Success 200 {object} domain.MessageRecord
// @Router /chat/rooms/{roomId}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	var req sendMessageReq
	if err := validate.Body(c, &req); err != nil {
		return err
	}

	record, err := h.messageUC.Send(c.UserContext(), c.Params("roomId"), uid, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": record})
}

// RoomSummary sequence lengths of a room
// @Summary Sequence lengths of a room
// @Tags Chat
// @Produce json
// @Param roomId path string true "room id"
// @Router /chat/rooms/{roomId} [get]
func (h *ChatHandler) RoomSummary(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	roomID := c.Params("roomId")
	lengths, err := h.messageUC.Summary(c.UserContext(), roomID, uid)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": fiber.Map{
		"room_id": roomID,
		"count":   lengths.Writers,
		"lengths": lengths,
	}})
}
