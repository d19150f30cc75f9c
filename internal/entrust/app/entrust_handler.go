package app

import (
	"entrust_service/internal/entrust/domain"
	"entrust_service/pkg/middlewares"
	"entrust_service/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// EntrustHandler 处理托付相关的 HTTP 请求
type EntrustHandler struct {
	uc EntrustUseCase
}

// NewEntrustHandler create EntrustHandler
func NewEntrustHandler(uc EntrustUseCase) *EntrustHandler {
	return &EntrustHandler{uc: uc}
}

type pageReq struct {
	Limit  *int `query:"limit" validate:"required,min=0"`
	Offset *int `query:"offset" validate:"required,min=0"`
}

type entrustReq struct {
	Text       *string `json:"text" validate:"required"`
	StartDate  string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	ToyPayment *int64  `json:"toypayment" validate:"required,min=0"`
	CityID     *int64  `json:"cityId" validate:"required"`
}

func (r entrustReq) input() domain.EntrustInput {
	return domain.EntrustInput{
		Text:       *r.Text,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		ToyPayment: *r.ToyPayment,
		CityID:     *r.CityID,
	}
}

// ListPets 可託付的寵物
// @Summary List entrustable pets
// @Tags Entrust
// @Produce json
// @Param limit query int true "page size"
// @Param offset query int true "page offset"
// @Success 200 {array} domain.Pet
// @Failure 400 {object} string "Parameter Error"
// @Router /entrust/pets [get]
func (h *EntrustHandler) ListPets(c *fiber.Ctx) error {
	var req pageReq
	if err := validate.Query(c, &req); err != nil {
		return err
	}
	pets, err := h.uc.ListEntrustablePets(c.UserContext(), *req.Limit, *req.Offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": pets})
}

// Info 託付看板摘要
// @Summary Entrust board summary
// @Tags Entrust
// @Produce json
// @Success 200 {object} domain.Info
// @Router /entrust/info [get]
func (h *EntrustHandler) Info(c *fiber.Ctx) error {
	info, err := h.uc.GetInfo(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": info})
}

// List 託付申請列表
// @Summary List entrust applications
// @Tags Entrust
// @Produce json
// @Param limit query int true "page size"
// @Param offset query int true "page offset"
// @Success 200 {array} domain.Entrust
// @Router /entrust [get]
func (h *EntrustHandler) List(c *fiber.Ctx) error {
	var req pageReq
	if err := validate.Query(c, &req); err != nil {
		return err
	}
	entrusts, err := h.uc.List(c.UserContext(), *req.Limit, *req.Offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": entrusts})
}

// Get 單一託付
// @Summary Get an entrust
// @Tags Entrust
// @Produce json
// @Param eid path int true "entrust id"
// @Success 200 {object} domain.Entrust
// @Failure 404 {object} string "not found"
// @Router /entrust/{eid} [get]
func (h *EntrustHandler) Get(c *fiber.Ctx) error {
	eid, err := validate.ParamInt64(c, "eid")
	if err != nil {
		return err
	}
	e, err := h.uc.Get(c.UserContext(), eid)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": e})
}

// Create 建立託付
// @Summary Create an entrust
// @Tags Entrust
// @Accept json
// @Produce json
// @Param request body entrustReq true "entrust"
// @Success 200 {object} domain.Entrust
// @Router /entrust [post]
func (h *EntrustHandler) Create(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	var req entrustReq
	if err := validate.Body(c, &req); err != nil {
		return err
	}
	e, err := h.uc.Create(c.UserContext(), uid, req.input())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": e})
}

// Update 修改託付, owner only
// @Summary Update an entrust
// @Tags Entrust
// @Accept json
// @Produce json
// @Param eid path int true "entrust id"
// @Param request body entrustReq true "entrust"
// @Success 200 {object} domain.Entrust
// @Failure 403 {object} string "Authentication Error!"
// @Router /entrust/{eid} [put]
func (h *EntrustHandler) Update(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	eid, err := validate.ParamInt64(c, "eid")
	if err != nil {
		return err
	}
	var req entrustReq
	if err := validate.Body(c, &req); err != nil {
		return err
	}
	e, err := h.uc.Update(c.UserContext(), uid, eid, req.input())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": e})
}

// Delete 刪除託付, owner only
// @Summary Delete an entrust
// @Tags Entrust
// @Produce json
// @Param eid path int true "entrust id"
// @Failure 403 {object} string "Authentication Error!"
// @Router /entrust/{eid} [delete]
func (h *EntrustHandler) Delete(c *fiber.Ctx) error {
	uid, err := middlewares.UID(c)
	if err != nil {
		return err
	}
	eid, err := validate.ParamInt64(c, "eid")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), uid, eid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"result": true})
}
