package handler

import (
	"net/http"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /inquiries（お問い合わせフォーム）
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

// DI
func NewInquiryHandler(uc *usecase.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

type InquiryRequest struct {
	InquiryType string `json:"inquiry_type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

func (h *InquiryHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/inquiries", h.submit)
	e.GET("/inquiries/types", h.types)
}

func (h *InquiryHandler) submit(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Submit(c.Request().Context(), usecase.InquiryInput{
		InquiryType: req.InquiryType,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *InquiryHandler) types(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.InquiryTypes())
}
