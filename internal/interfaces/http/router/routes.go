package router

import (
	"github.com/asnhr/hrms/internal/infrastructure/authz"
	"github.com/asnhr/hrms/internal/interfaces/http/handler"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Policy resources guarded by the permission middleware
const (
	ResourceUnits             = "units"
	ResourceDepartments       = "departments"
	ResourceEmployees         = "employees"
	ResourceLeave             = "leave"
	ResourceAttendance        = "attendance"
	ResourceAttendanceReports = "attendance.reports"
	ResourceHolidays          = "holidays"
	ResourceSettings          = "settings"
	ResourcePayroll           = "payroll"
	ResourceCompliance        = "compliance"
	ResourceDashboard         = "dashboard"
)

// Handlers are the HTTP handlers mounted under the API prefix
type Handlers struct {
	Auth       *handler.AuthHandler
	Employee   *handler.EmployeeHandler
	Unit       *handler.UnitHandler
	Department *handler.DepartmentHandler
	Leave      *handler.LeaveHandler
	Attendance *handler.AttendanceHandler
	Holiday    *handler.HolidayHandler
	Payroll    *handler.PayrollHandler
	Compliance *handler.ComplianceHandler
	Dashboard  *handler.DashboardHandler
	System     *handler.SystemHandler
}

// RouteOptions tunes the guards placed in front of the handlers
type RouteOptions struct {
	Permissions middleware.PermissionConfig
	// LoginGuard runs before login and refresh, typically a per-IP rate limit
	LoginGuard gin.HandlerFunc
}

// PublicPaths are the API paths, relative to the API prefix, served without a token
var PublicPaths = []string{"/auth/login", "/auth/refresh", "/system/info"}

// HRRoutes builds the route groups of the HR API
func HRRoutes(h Handlers, opts RouteOptions) []*DomainGroup {
	perm := opts.Permissions
	guard := func(resource string) gin.HandlerFunc {
		return middleware.RequireResource(perm, resource)
	}
	read := func(resource string) gin.HandlerFunc {
		return middleware.RequireResourceAction(perm, resource, authz.ActionRead)
	}

	authRoutes := NewDomainGroup("auth", "/auth")
	if opts.LoginGuard != nil {
		authRoutes.POST("/login", opts.LoginGuard, h.Auth.Login)
		authRoutes.POST("/refresh", opts.LoginGuard, h.Auth.RefreshToken)
	} else {
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/refresh", h.Auth.RefreshToken)
	}
	authRoutes.POST("/logout", h.Auth.Logout)
	authRoutes.GET("/me", h.Auth.GetCurrentUser)
	authRoutes.PUT("/password", h.Auth.ChangePassword)

	unitRoutes := NewDomainGroup("units", "/masters/units").Use(guard(ResourceUnits))
	unitRoutes.GET("", h.Unit.List)
	unitRoutes.POST("", h.Unit.Create)
	unitRoutes.GET("/:id", h.Unit.Get)
	unitRoutes.PUT("/:id", h.Unit.Update)
	unitRoutes.DELETE("/:id", h.Unit.Delete)

	departmentRoutes := NewDomainGroup("departments", "/departments").Use(guard(ResourceDepartments))
	departmentRoutes.GET("", h.Department.List)
	departmentRoutes.POST("", h.Department.Create)
	departmentRoutes.GET("/:id", h.Department.Get)
	departmentRoutes.PUT("/:id", h.Department.Update)
	departmentRoutes.DELETE("/:id", h.Department.Delete)

	employeeRoutes := NewDomainGroup("employees", "/employees")
	employeeRoutes.GET("", guard(ResourceEmployees), h.Employee.List)
	employeeRoutes.POST("", guard(ResourceEmployees), h.Employee.Create)
	employeeRoutes.GET("/:id", guard(ResourceEmployees), h.Employee.Get)
	employeeRoutes.PUT("/:id", guard(ResourceEmployees), h.Employee.Update)
	employeeRoutes.DELETE("/:id", guard(ResourceEmployees), h.Employee.Delete)
	employeeRoutes.GET("/:id/leave-balance", read(ResourceLeave), h.Leave.Balance)

	leaveRoutes := NewDomainGroup("leave", "/leave-requests").Use(guard(ResourceLeave))
	leaveRoutes.GET("", h.Leave.List)
	leaveRoutes.POST("", h.Leave.Submit)
	leaveRoutes.GET("/analytics", h.Leave.Analytics)
	leaveRoutes.GET("/monthly-usage", h.Leave.MonthlyUsage)
	leaveRoutes.GET("/:id", h.Leave.Get)
	leaveRoutes.PUT("/:id", h.Leave.Decide)
	leaveRoutes.DELETE("/:id", h.Leave.Cancel)

	attendanceRoutes := NewDomainGroup("attendance", "/attendance").Use(guard(ResourceAttendance))
	attendanceRoutes.GET("", h.Attendance.List)
	attendanceRoutes.POST("", h.Attendance.Record)
	attendanceRoutes.POST("/check-in", h.Attendance.CheckIn)
	attendanceRoutes.POST("/check-out", h.Attendance.CheckOut)
	reportRoutes := attendanceRoutes.Group("attendance.reports", "/reports").Use(read(ResourceAttendanceReports))
	reportRoutes.GET("/unit-wise", h.Attendance.UnitWiseReport)
	reportRoutes.GET("/individual/:id", h.Attendance.IndividualReport)

	holidayRoutes := NewDomainGroup("holidays", "/holidays").Use(guard(ResourceHolidays))
	holidayRoutes.GET("", h.Holiday.List)
	holidayRoutes.POST("", h.Holiday.Create)
	holidayRoutes.GET("/upcoming", h.Holiday.Upcoming)
	holidayRoutes.POST("/import", h.Holiday.Import)
	holidayRoutes.PUT("/:id", h.Holiday.Update)
	holidayRoutes.DELETE("/:id", h.Holiday.Delete)

	settingsRoutes := NewDomainGroup("settings", "/settings").Use(guard(ResourceSettings))
	settingsRoutes.GET("/system", h.Payroll.GetSettings)
	settingsRoutes.PUT("/system", h.Payroll.UpdateSettings)

	// The calculators only read settings, so POST is checked as read.
	payrollRoutes := NewDomainGroup("payroll", "/payroll").Use(read(ResourcePayroll))
	payrollRoutes.POST("/ctc", h.Payroll.CalculateCTC)
	payrollRoutes.POST("/tax-compare", h.Payroll.CompareTax)
	payrollRoutes.GET("/structure", h.Payroll.Structure)

	complianceRoutes := NewDomainGroup("compliance", "/compliance").Use(guard(ResourceCompliance))
	complianceRoutes.GET("/mlwf", h.Compliance.MLWFStatement)
	complianceRoutes.GET("/mlwf/template", h.Compliance.MLWFTemplate)
	complianceRoutes.POST("/mlwf/import", h.Compliance.ImportMLWF)
	complianceRoutes.POST("/mlwf/challans", h.Compliance.UploadChallan)
	complianceRoutes.GET("/mlwf/challans", h.Compliance.ListChallans)
	complianceRoutes.GET("/mlwf/challans/:id/download", h.Compliance.DownloadChallan)
	complianceRoutes.GET("/bonus", h.Compliance.BonusRegister)

	dashboardRoutes := NewDomainGroup("dashboard", "/dashboard").Use(guard(ResourceDashboard))
	dashboardRoutes.GET("", h.Dashboard.Get)

	systemRoutes := NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", h.System.GetSystemInfo)

	return []*DomainGroup{
		authRoutes,
		unitRoutes,
		departmentRoutes,
		employeeRoutes,
		leaveRoutes,
		attendanceRoutes,
		holidayRoutes,
		settingsRoutes,
		payrollRoutes,
		complianceRoutes,
		dashboardRoutes,
		systemRoutes,
	}
}

// RegisterHR mounts the HR API on r
func (r *Router) RegisterHR(h Handlers, opts RouteOptions) *Router {
	for _, g := range HRRoutes(h, opts) {
		r.Register(g)
	}
	return r
}

// PublicAPIPaths returns PublicPaths with the API prefix, ready for the JWT skip list
func (r *Router) PublicAPIPaths() []string {
	out := make([]string, 0, len(PublicPaths))
	for _, p := range PublicPaths {
		out = append(out, r.Prefix()+p)
	}
	return out
}
