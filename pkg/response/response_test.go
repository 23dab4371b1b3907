package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirect_UsesSeeOther(t *testing.T) {
	rec := httptest.NewRecorder()
	Redirect(rec, httptest.NewRequest(http.MethodPost, "/check", nil), "/doctor")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/doctor", rec.Header().Get("Location"))
}

func TestInternalServerError_DefaultsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalServerError(rec, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestJSON_EncodesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
