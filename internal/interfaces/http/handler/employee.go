package handler

import (
	"time"

	appemp "github.com/asnhr/hrms/internal/application/employee"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *appemp.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *appemp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListEmployeesRequest holds the employee listing query
type ListEmployeesRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search" binding:"max=100"`
	OrderBy    string `form:"order_by" binding:"omitempty,oneof=employee_code first_name last_name join_date created_at"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Role       string `form:"role" binding:"omitempty,oneof=admin hr manager employee developer"`
	ActiveOnly bool   `form:"active"`
}

// CreateEmployeeRequest is the body of POST /employees.
// An empty employee_code is generated.
type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code" binding:"omitempty,max=20,master_code" example:"EMP001"`
	Username     string          `json:"username" binding:"required,min=3,max=50"`
	Password     string          `json:"password" binding:"required,min=6,max=128"`
	FirstName    string          `json:"first_name" binding:"required,max=100"`
	LastName     string          `json:"last_name" binding:"required,max=100"`
	Email        string          `json:"email" binding:"omitempty,email"`
	Phone        string          `json:"phone" binding:"omitempty,mobile_in" example:"9822012345"`
	Position     string          `json:"position" binding:"max=100"`
	DepartmentID *uuid.UUID      `json:"department_id"`
	Role         string          `json:"role" binding:"omitempty,oneof=admin hr manager employee developer"`
	Salary       decimal.Decimal `json:"salary" swaggertype:"string" example:"25000"`
	JoinDate     string          `json:"join_date" binding:"omitempty,datetime=2006-01-02" example:"2024-04-01"`
}

// UpdateEmployeeRequest is the body of PUT /employees/:id; absent fields are kept
type UpdateEmployeeRequest struct {
	FirstName       *string          `json:"first_name" binding:"omitempty,max=100"`
	LastName        *string          `json:"last_name" binding:"omitempty,max=100"`
	Email           *string          `json:"email" binding:"omitempty,email"`
	Phone           *string          `json:"phone" binding:"omitempty,mobile_in"`
	Position        *string          `json:"position" binding:"omitempty,max=100"`
	DepartmentID    *uuid.UUID       `json:"department_id"`
	ClearDepartment bool             `json:"clear_department"`
	Role            *string          `json:"role" binding:"omitempty,oneof=admin hr manager employee developer"`
	Salary          *decimal.Decimal `json:"salary" swaggertype:"string"`
	JoinDate        *string          `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool            `json:"is_active"`
	Password        *string          `json:"password" binding:"omitempty,min=6,max=128"`
}

// List godoc
// @ID           listEmployees
// @Summary      List employees
// @Description  Paginated employee listing; a unit filter covers every department of the unit
// @Tags         employees
// @Produce      json
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Code, name, username or email"
// @Param        departmentId query string false "Department" format(uuid)
// @Param        unitId query string false "Unit" format(uuid)
// @Param        role query string false "Role"
// @Param        active query bool false "Active employees only"
// @Success      200 {object} PagedResponse[appemp.EmployeeResponse]
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	var req ListEmployeesRequest
	if !h.bindQuery(c, &req) {
		return
	}
	deptID, ok := h.queryUUID(c, "departmentId")
	if !ok {
		return
	}
	unitID, ok := h.queryUUID(c, "unitId")
	if !ok {
		return
	}

	page, err := h.employeeService.List(c.Request.Context(), appemp.ListEmployeesInput{
		Page:         req.Page,
		PageSize:     req.PageSize,
		Search:       req.Search,
		OrderBy:      req.OrderBy,
		OrderDir:     req.OrderDir,
		DepartmentID: deptID,
		UnitID:       unitID,
		Role:         employee.Role(req.Role),
		ActiveOnly:   req.ActiveOnly,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getEmployee
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} APIResponse[appemp.EmployeeResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	emp, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, emp)
}

// Create godoc
// @ID           createEmployee
// @Summary      Onboard an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body CreateEmployeeRequest true "Employee"
// @Success      201 {object} APIResponse[appemp.EmployeeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	var joinDate time.Time
	if req.JoinDate != "" {
		joinDate, _ = time.Parse(DateLayout, req.JoinDate)
	}

	emp, err := h.employeeService.Create(c.Request.Context(), appemp.CreateEmployeeInput{
		EmployeeCode: req.EmployeeCode,
		Username:     req.Username,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		Role:         employee.Role(req.Role),
		Salary:       req.Salary,
		JoinDate:     joinDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, emp)
}

// Update godoc
// @ID           updateEmployee
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        request body UpdateEmployeeRequest true "Fields to change"
// @Success      200 {object} APIResponse[appemp.EmployeeResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateEmployeeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	input := appemp.UpdateEmployeeInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Position:        req.Position,
		DepartmentID:    req.DepartmentID,
		ClearDepartment: req.ClearDepartment,
		Salary:          req.Salary,
		IsActive:        req.IsActive,
		Password:        req.Password,
	}
	if req.Role != nil {
		role := employee.Role(*req.Role)
		input.Role = &role
	}
	if req.JoinDate != nil {
		d, _ := time.Parse(DateLayout, *req.JoinDate)
		input.JoinDate = &d
	}

	emp, err := h.employeeService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, emp)
}

// Delete godoc
// @ID           deleteEmployee
// @Summary      Delete an employee
// @Description  Callers cannot delete their own account
// @Tags         employees
// @Param        id path string true "Employee ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id, p.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
