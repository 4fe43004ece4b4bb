package handler

import (
	"net/http"
	"strconv"
	"time"

	appholiday "github.com/asnhr/hrms/internal/application/holiday"
	"github.com/gin-gonic/gin"
)

// HolidayHandler handles the holiday calendar
type HolidayHandler struct {
	BaseHandler
	holidayService *appholiday.HolidayService
}

// NewHolidayHandler creates a new holiday handler
func NewHolidayHandler(holidayService *appholiday.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidayService: holidayService}
}

// HolidayRequest is the body of POST /holidays and PUT /holidays/:id
type HolidayRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Diwali"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02" example:"2025-10-21"`
	Description string `json:"description" binding:"max=500"`
	IsOptional  bool   `json:"is_optional"`
}

func (r HolidayRequest) input() appholiday.HolidayInput {
	d, _ := time.Parse(DateLayout, r.Date)
	return appholiday.HolidayInput{Name: r.Name, Date: d, Description: r.Description, IsOptional: r.IsOptional}
}

// ImportHolidaysRequest is the body of POST /holidays/import
type ImportHolidaysRequest struct {
	Holidays []HolidayRequest `json:"holidays" binding:"required,min=1,max=366,dive"`
}

// List godoc
// @ID           listHolidays
// @Summary      List holidays
// @Tags         holidays
// @Produce      json
// @Param        year query int false "Calendar year; all years when omitted"
// @Success      200 {object} APIResponse[[]appholiday.HolidayResponse]
// @Security     BearerAuth
// @Router       /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, "INVALID_YEAR", "year must be a number")
			return
		}
		year = y
	}
	hols, err := h.holidayService.List(c.Request.Context(), year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hols)
}

// Upcoming godoc
// @ID           upcomingHolidays
// @Summary      Next holidays from today
// @Tags         holidays
// @Produce      json
// @Param        limit query int false "How many" default(3)
// @Success      200 {object} APIResponse[[]appholiday.HolidayResponse]
// @Security     BearerAuth
// @Router       /holidays/upcoming [get]
func (h *HolidayHandler) Upcoming(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 || limit > 50 {
		h.BadRequest(c, "limit must be between 1 and 50")
		return
	}
	hols, err := h.holidayService.Upcoming(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hols)
}

// Create godoc
// @ID           createHoliday
// @Summary      Add a holiday
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        request body HolidayRequest true "Holiday"
// @Success      201 {object} APIResponse[appholiday.HolidayResponse]
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /holidays [post]
func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if !h.bindJSON(c, &req) {
		return
	}
	hol, err := h.holidayService.Create(c.Request.Context(), req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, hol)
}

// Update godoc
// @ID           updateHoliday
// @Summary      Update a holiday
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        id path string true "Holiday ID" format(uuid)
// @Param        request body HolidayRequest true "Holiday"
// @Success      200 {object} APIResponse[appholiday.HolidayResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /holidays/{id} [put]
func (h *HolidayHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req HolidayRequest
	if !h.bindJSON(c, &req) {
		return
	}
	hol, err := h.holidayService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hol)
}

// Delete godoc
// @ID           deleteHoliday
// @Summary      Delete a holiday
// @Tags         holidays
// @Param        id path string true "Holiday ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /holidays/{id} [delete]
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.holidayService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Import godoc
// @ID           importHolidays
// @Summary      Import a holiday calendar
// @Description  Dates that already have a holiday are skipped
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        request body ImportHolidaysRequest true "Calendar"
// @Success      200 {object} APIResponse[appholiday.ImportResult]
// @Security     BearerAuth
// @Router       /holidays/import [post]
func (h *HolidayHandler) Import(c *gin.Context) {
	var req ImportHolidaysRequest
	if !h.bindJSON(c, &req) {
		return
	}
	entries := make([]appholiday.HolidayInput, 0, len(req.Holidays))
	for _, r := range req.Holidays {
		entries = append(entries, r.input())
	}
	result, err := h.holidayService.Import(c.Request.Context(), entries)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
