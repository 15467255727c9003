package handler

import (
	"context"
	"fmt"
	"time"

	attendanceapp "github.com/culturehub/backend/internal/application/attendance"
	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/interfaces/http/dto"
	"github.com/culturehub/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceService is the part of the attendance application service the API uses
type AttendanceService interface {
	MarkAttendance(ctx context.Context, req attendanceapp.MarkAttendanceRequest) (*attendanceapp.AttendanceResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req attendanceapp.UpdateStatusRequest) (*attendanceapp.AttendanceResponse, error)
	Remove(ctx context.Context, id uuid.UUID) error
	GetAvailableBases(ctx context.Context, scheduleID uuid.UUID) ([]attendanceapp.SubscriptionBaseResponse, error)
	GetClientStats(ctx context.Context, clientID uuid.UUID, req attendanceapp.StatsRequest) (*attendanceapp.ClientStatsResponse, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]attendanceapp.AttendanceResponse, error)
}

// AttendanceHandler handles attendance marking endpoints
type AttendanceHandler struct {
	BaseHandler
	service AttendanceService
}

func NewAttendanceHandler(service AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// MarkAttendanceRequest is the body of POST /attendance
type MarkAttendanceRequest struct {
	ScheduleID     uuid.UUID  `json:"schedule_id" binding:"required"`
	ClientID       uuid.UUID  `json:"client_id" binding:"required"`
	Status         string     `json:"status" binding:"required,oneof=PRESENT ABSENT EXCUSED"`
	Notes          *string    `json:"notes" binding:"omitempty,max=2000"`
	SubscriptionID *uuid.UUID `json:"subscription_id"`
}

// UpdateAttendanceRequest is the body of PATCH /attendance/:id
type UpdateAttendanceRequest struct {
	Status         *string    `json:"status" binding:"omitempty,oneof=PRESENT ABSENT EXCUSED"`
	Notes          *string    `json:"notes" binding:"omitempty,max=2000"`
	SubscriptionID *uuid.UUID `json:"subscription_id"`
}

// ClientStatsQuery bounds the stats window by class date
type ClientStatsQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ListAttendanceQuery selects the schedule whose marks are listed
type ListAttendanceQuery struct {
	ScheduleID string `form:"schedule_id" binding:"required,uuid"`
}

// Mark godoc
// @ID           markAttendance
// @Summary      Mark attendance
// @Description  Records a client's mark on a class. PRESENT on a group class is charged to the requested subscription or the newest eligible one.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request body MarkAttendanceRequest true "Attendance mark"
// @Success      201 {object} dto.Response{data=attendanceapp.AttendanceResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.MarkAttendance(c.Request.Context(), attendanceapp.MarkAttendanceRequest{
		ScheduleID:     req.ScheduleID,
		ClientID:       req.ClientID,
		Status:         attendance.Status(req.Status),
		Notes:          req.Notes,
		SubscriptionID: req.SubscriptionID,
		ActingUserID:   middleware.GetActingUserID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update godoc
// @ID           updateAttendance
// @Summary      Update attendance status
// @Description  Changes status or notes of a mark and settles the visit ledger for the transition
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Attendance ID" format(uuid)
// @Param        request body UpdateAttendanceRequest true "Status change"
// @Success      200 {object} dto.Response{data=attendanceapp.AttendanceResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance/{id} [patch]
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateAttendanceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := attendanceapp.UpdateStatusRequest{
		Notes:          req.Notes,
		SubscriptionID: req.SubscriptionID,
		ActingUserID:   middleware.GetActingUserID(c),
	}
	if req.Status != nil {
		status := attendance.Status(*req.Status)
		appReq.Status = &status
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Remove godoc
// @ID           removeAttendance
// @Summary      Remove attendance
// @Description  Deletes a mark and gives its visit back when it consumed one
// @Tags         attendance
// @Param        id path string true "Attendance ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance/{id} [delete]
func (h *AttendanceHandler) Remove(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AvailableBases godoc
// @ID           listAttendanceBases
// @Summary      List subscriptions that can cover a class
// @Tags         attendance
// @Produce      json
// @Param        scheduleId path string true "Schedule ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]attendanceapp.SubscriptionBaseResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance/bases/{scheduleId} [get]
func (h *AttendanceHandler) AvailableBases(c *gin.Context) {
	scheduleID, ok := h.uuidParam(c, "scheduleId")
	if !ok {
		return
	}
	bases, err := h.service.GetAvailableBases(c.Request.Context(), scheduleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bases)
}

// ClientStats godoc
// @ID           getClientAttendanceStats
// @Summary      Attendance statistics of a client
// @Tags         attendance
// @Produce      json
// @Param        clientId path  string true  "Client ID" format(uuid)
// @Param        from     query string false "First class date" format(date)
// @Param        to       query string false "Last class date" format(date)
// @Success      200 {object} dto.Response{data=attendanceapp.ClientStatsResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance/stats/{clientId} [get]
func (h *AttendanceHandler) ClientStats(c *gin.Context) {
	clientID, ok := h.uuidParam(c, "clientId")
	if !ok {
		return
	}
	var q ClientStatsQuery
	if !h.bindQuery(c, &q) {
		return
	}

	from, err := parseOptionalDate(q.From)
	if err != nil {
		h.BadRequest(c, dto.ErrCodeValidation, "from: "+err.Error())
		return
	}
	to, err := parseOptionalDate(q.To)
	if err != nil {
		h.BadRequest(c, dto.ErrCodeValidation, "to: "+err.Error())
		return
	}
	req := attendanceapp.StatsRequest{From: from, To: to}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		h.BadRequest(c, dto.ErrCodeValidation, "to must not be before from")
		return
	}

	stats, err := h.service.GetClientStats(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// List godoc
// @ID           listAttendance
// @Summary      List marks of a class
// @Tags         attendance
// @Produce      json
// @Param        schedule_id query string true "Schedule ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]attendanceapp.AttendanceResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	var q ListAttendanceQuery
	if !h.bindQuery(c, &q) {
		return
	}
	scheduleID, err := uuid.Parse(q.ScheduleID)
	if err != nil {
		h.BadRequest(c, dto.ErrCodeInvalidID, "Invalid schedule_id")
		return
	}
	marks, err := h.service.ListBySchedule(c.Request.Context(), scheduleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, marks)
}

// parseOptionalDate parses a YYYY-MM-DD query value; empty means unbounded
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return &d, nil
}
