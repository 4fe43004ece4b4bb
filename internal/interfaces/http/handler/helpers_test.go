package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// envelope mirrors dto.Response with the payload left raw
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

// asCaller authenticates every request as p, the way the JWT middleware would
func asCaller(p employee.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTClaimsKey, &auth.Claims{UserID: p.ID.String(), Role: string(p.Role)})
		c.Next()
	}
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	return r
}

func perform(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	env := decode(t, w)
	require.True(t, env.Success, w.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := decode(t, w)
	require.False(t, env.Success)
	require.NotNil(t, env.Error, w.Body.String())
	return env.Error.Code
}

var staffSeq int64

func hire(t *testing.T, emps *testutil.EmployeeRepository, username string, role employee.Role) *employee.Employee {
	t.Helper()
	staffSeq++
	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: employee.FormatEmployeeCode(staffSeq),
		Username:     username,
		Password:     "secret123",
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		LastName:     "Patil",
		Role:         role,
		Salary:       decimal.NewFromInt(25000),
		JoinDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, emps.Create(context.Background(), e))
	return e
}

func principalOf(e *employee.Employee) employee.Principal {
	return employee.Principal{ID: e.ID, Role: e.Role}
}
