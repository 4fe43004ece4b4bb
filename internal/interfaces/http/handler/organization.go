package handler

import (
	apporg "github.com/asnhr/hrms/internal/application/organization"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles unit master endpoints
type UnitHandler struct {
	BaseHandler
	unitService *apporg.UnitService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService *apporg.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// CreateUnitRequest is the body of POST /masters/units
type CreateUnitRequest struct {
	Code    string `json:"code" binding:"required,max=20,master_code" example:"PUN"`
	Name    string `json:"name" binding:"required,max=100" example:"Pune Plant"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateUnitRequest is the body of PUT /masters/units/:id
type UpdateUnitRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Address  string `json:"address" binding:"max=500"`
	IsActive *bool  `json:"is_active"`
}

// List godoc
// @ID           listUnits
// @Summary      List units
// @Tags         units
// @Produce      json
// @Success      200 {object} APIResponse[[]apporg.UnitResponse]
// @Security     BearerAuth
// @Router       /masters/units [get]
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.unitService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, units)
}

// Get godoc
// @ID           getUnit
// @Summary      Get a unit
// @Tags         units
// @Produce      json
// @Param        id path string true "Unit ID" format(uuid)
// @Success      200 {object} APIResponse[apporg.UnitResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /masters/units/{id} [get]
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	unit, err := h.unitService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Create godoc
// @ID           createUnit
// @Summary      Create a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        request body CreateUnitRequest true "Unit"
// @Success      201 {object} APIResponse[apporg.UnitResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /masters/units [post]
func (h *UnitHandler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.Create(c.Request.Context(), apporg.CreateUnitInput{
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, unit)
}

// Update godoc
// @ID           updateUnit
// @Summary      Update a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        id path string true "Unit ID" format(uuid)
// @Param        request body UpdateUnitRequest true "Unit"
// @Success      200 {object} APIResponse[apporg.UnitResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /masters/units/{id} [put]
func (h *UnitHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	unit, err := h.unitService.Update(c.Request.Context(), id, apporg.UpdateUnitInput{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Delete godoc
// @ID           deleteUnit
// @Summary      Delete a unit
// @Description  Units that still own departments cannot be deleted
// @Tags         units
// @Param        id path string true "Unit ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /masters/units/{id} [delete]
func (h *UnitHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.unitService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DepartmentHandler handles department endpoints
type DepartmentHandler struct {
	BaseHandler
	deptService *apporg.DepartmentService
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(deptService *apporg.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptService: deptService}
}

// CreateDepartmentRequest is the body of POST /departments
type CreateDepartmentRequest struct {
	Code        string     `json:"code" binding:"required,max=20,master_code" example:"ACC"`
	Name        string     `json:"name" binding:"required,max=100" example:"Accounts"`
	Description string     `json:"description" binding:"max=500"`
	UnitID      *uuid.UUID `json:"unit_id"`
}

// UpdateDepartmentRequest is the body of PUT /departments/:id.
// clear_unit detaches the department from its unit.
type UpdateDepartmentRequest struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description" binding:"max=500"`
	UnitID      *uuid.UUID `json:"unit_id"`
	ClearUnit   bool       `json:"clear_unit"`
	IsActive    *bool      `json:"is_active"`
}

// List godoc
// @ID           listDepartments
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Param        unitId query string false "Only departments of this unit" format(uuid)
// @Success      200 {object} APIResponse[[]apporg.DepartmentResponse]
// @Security     BearerAuth
// @Router       /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	unitID, ok := h.queryUUID(c, "unitId")
	if !ok {
		return
	}
	depts, err := h.deptService.List(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, depts)
}

// Get godoc
// @ID           getDepartment
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Success      200 {object} APIResponse[apporg.DepartmentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	dept, err := h.deptService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dept)
}

// Create godoc
// @ID           createDepartment
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body CreateDepartmentRequest true "Department"
// @Success      201 {object} APIResponse[apporg.DepartmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	dept, err := h.deptService.Create(c.Request.Context(), apporg.CreateDepartmentInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		UnitID:      req.UnitID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dept)
}

// Update godoc
// @ID           updateDepartment
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Param        request body UpdateDepartmentRequest true "Department"
// @Success      200 {object} APIResponse[apporg.DepartmentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateDepartmentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	dept, err := h.deptService.Update(c.Request.Context(), id, apporg.UpdateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		UnitID:      req.UnitID,
		ClearUnit:   req.ClearUnit,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dept)
}

// Delete godoc
// @ID           deleteDepartment
// @Summary      Delete a department
// @Description  Employees of the department become unassigned
// @Tags         departments
// @Param        id path string true "Department ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.deptService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
