package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func reply(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, body)
	}
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter_Prefix(t *testing.T) {
	assert.Equal(t, "/api/v1", NewRouter(gin.New()).Prefix())
	assert.Equal(t, "/api/v2", NewRouter(gin.New(), WithAPIVersion("v2")).Prefix())
}

func TestDomainGroup_MountsEveryMethod(t *testing.T) {
	engine := gin.New()
	leaves := NewDomainGroup("leave", "/leave-requests").
		GET("", reply("list")).
		POST("", reply("submit")).
		PUT("/:id", reply("decide")).
		PATCH("/:id/cancel", reply("cancel")).
		DELETE("/:id", reply("withdraw"))
	NewRouter(engine).Register(leaves).Setup()

	assert.Equal(t, "leave", leaves.Name())
	assert.Equal(t, "/leave-requests", leaves.Prefix())

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/leave-requests", "list"},
		{http.MethodPost, "/api/v1/leave-requests", "submit"},
		{http.MethodPut, "/api/v1/leave-requests/7", "decide"},
		{http.MethodPatch, "/api/v1/leave-requests/7/cancel", "cancel"},
		{http.MethodDelete, "/api/v1/leave-requests/7", "withdraw"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/leave-requests").Code)
}

func TestDomainGroup_Subgroups(t *testing.T) {
	engine := gin.New()
	att := NewDomainGroup("attendance", "/attendance")
	reports := att.Group("reports", "/reports")
	reports.GET("/unit-wise", reply("unit-wise"))
	reports.Group("individual", "/individual").GET("/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "individual "+c.Param("id"))
	})
	NewRouter(engine).Register(att).Setup()

	assert.Equal(t, "unit-wise", serve(engine, http.MethodGet, "/api/v1/attendance/reports/unit-wise").Body.String())
	assert.Equal(t, "individual 42", serve(engine, http.MethodGet, "/api/v1/attendance/reports/individual/42").Body.String())
	assert.Equal(t, []string{
		"GET /attendance/reports/unit-wise",
		"GET /attendance/reports/individual/:id",
	}, att.Routes())
}

func TestDomainGroup_MiddlewareStaysInGroup(t *testing.T) {
	engine := gin.New()
	units := NewDomainGroup("units", "/masters/units").
		Use(func(c *gin.Context) {
			c.Header("X-Masters", "1")
			c.Next()
		}).
		GET("", reply("units"))
	departments := NewDomainGroup("departments", "/departments").GET("", reply("departments"))
	NewRouter(engine).Register(units, departments).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/masters/units")
	assert.Equal(t, "units", w.Body.String())
	assert.Equal(t, "1", w.Header().Get("X-Masters"))

	w = serve(engine, http.MethodGet, "/api/v1/departments")
	assert.Equal(t, "departments", w.Body.String())
	assert.Empty(t, w.Header().Get("X-Masters"))
}

func TestRouterUse_SkipsEngineRoutes(t *testing.T) {
	engine := gin.New()
	engine.GET("/health", reply("ok"))

	r := NewRouter(engine).Use(func(c *gin.Context) {
		c.Header("X-Api", "1")
		c.Next()
	})
	r.Register(NewDomainGroup("dashboard", "/dashboard").GET("", reply("dash"))).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Api"))

	w = serve(engine, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Api"))
}
