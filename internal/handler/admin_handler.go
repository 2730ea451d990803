package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turfbook/service-booking/internal/application"
	bookingDomain "github.com/turfbook/service-booking/internal/domain/booking"
	"github.com/turfbook/service-booking/pkg/auth"
	"github.com/turfbook/service-booking/pkg/middleware"
	"github.com/turfbook/service-booking/pkg/response"
)

const dateLayout = "2006-01-02"

// AdminBookingHandler handles admin HTTP requests: filtered listings,
// approve/reject actions, and reports.
type AdminBookingHandler struct {
	service *application.BookingService
}

// NewAdminBookingHandler creates a new AdminBookingHandler.
func NewAdminBookingHandler(service *application.BookingService) *AdminBookingHandler {
	return &AdminBookingHandler{service: service}
}

// RegisterRoutes registers admin booking routes behind JWT admin auth.
func (h *AdminBookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminRole := middleware.RequireRole(auth.RoleAdmin)

	admin := r.Group("/api/v1/admin")
	admin.Use(authMW, adminRole)
	{
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/:id/approve", h.ApproveBooking)
		admin.POST("/bookings/:id/reject", h.RejectBooking)
		admin.GET("/reports", h.Report)
	}
}

// ListBookings handles GET /api/v1/admin/bookings.
// Query params: status (pending|approved|rejected|all, default all),
// from and to (YYYY-MM-DD, both required to activate the date filter),
// page and limit.
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	statusFilter, err := bookingDomain.ParseStatusFilter(c.Query("status"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	spec := bookingDomain.FilterSpec{Status: statusFilter}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			response.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			response.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		spec.Range = &bookingDomain.DateRange{From: from, To: to}
	}

	page, limit := parsePagination(c)

	result, err := h.service.ListBookings(c.Request.Context(), spec, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// ApproveBooking handles POST /api/v1/admin/bookings/:id/approve.
func (h *AdminBookingHandler) ApproveBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RejectBooking handles POST /api/v1/admin/bookings/:id/reject.
func (h *AdminBookingHandler) RejectBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.RejectBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Report handles GET /api/v1/admin/reports.
// Query params: granularity (day|month|year, default day) and date (YYYY-MM-DD,
// default today) as the reference date.
func (h *AdminBookingHandler) Report(c *gin.Context) {
	granularity, err := bookingDomain.ParseGranularity(c.DefaultQuery("granularity", "day"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reference := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		reference, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
	}

	window := bookingDomain.ReportWindow{Granularity: granularity, Reference: reference}
	report, err := h.service.BuildReport(c.Request.Context(), window)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, report)
}
