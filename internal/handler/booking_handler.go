package handler

import (
	"net/http"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// テーブル予約と貸切イベント
type BookingHandler struct {
	uc *usecase.BookingUsecase
}

// DI
func NewBookingHandler(uc *usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

type TableBookingRequest struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int64  `json:"guests"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

type EventBookingRequest struct {
	EventDate           string `json:"event_date"`
	EventTime           string `json:"event_time"`
	GuestCount          int64  `json:"guest_count"`
	EventType           string `json:"event_type"`
	MenuPackage         string `json:"menu_package"`
	Budget              string `json:"budget"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	SpecialRequests     string `json:"special_requests"`
	ContactMethod       string `json:"contact_method"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	e.POST("/bookings", h.createTable, auth...)
	e.GET("/bookings", h.list, auth...)
	e.POST("/events", h.createEvent, auth...)
	e.GET("/events/options", h.options)
}

func (h *BookingHandler) createTable(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req TableBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	b, err := h.uc.CreateTableBooking(c.Request().Context(), sessionID, usecase.TableBookingInput{
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) createEvent(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req EventBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	b, err := h.uc.CreateEventBooking(c.Request().Context(), sessionID, usecase.EventBookingInput{
		EventDate:           req.EventDate,
		EventTime:           req.EventTime,
		GuestCount:          req.GuestCount,
		EventType:           req.EventType,
		MenuPackage:         req.MenuPackage,
		Budget:              req.Budget,
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialRequests:     req.SpecialRequests,
		ContactMethod:       req.ContactMethod,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) list(c echo.Context) error {
	sessionID, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	list, err := h.uc.ListBookings(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) options(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.EventOptions())
}
