package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	skemap "github.com/reoring/skemap"
	ginmw "github.com/reoring/skemap/middleware/gin"
	"github.com/reoring/skemap/models/storage"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := skemap.NewRegistry()
	if err := storage.Register(reg); err != nil {
		t.Fatal(err)
	}
	eng := skemap.New(reg)

	r := gin.New()
	r.POST("/regenerateKey", ginmw.ValidateJSON(eng, "StorageAccountRegenerateKeyParameters", skemap.ParseOpt{}), func(c *gin.Context) {
		p, err := ginmw.Bind[storage.RegenerateKeyParameters](c)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, p.KeyName)
	})
	return r
}

func TestValidateJSON(t *testing.T) {
	r := newRouter(t)
	cases := []struct {
		body     string
		status   int
		contains string
	}{
		{`{"keyName":"key2"}`, http.StatusOK, "key2"},
		{`{}`, http.StatusBadRequest, `"code":"required"`},
		{`not json`, http.StatusBadRequest, `"code":"parse_error"`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/regenerateKey", strings.NewReader(tc.body))
		r.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("%s: status %d", tc.body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.contains) {
			t.Fatalf("%s: body %s", tc.body, rec.Body.String())
		}
	}
}
