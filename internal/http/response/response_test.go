package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return w, env
}

func TestSuccess(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		Success(c, http.StatusCreated, "created", gin.H{"id": "1"})
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !env.Success || env.Message != "created" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Data == nil || env.Errors != nil {
		t.Fatalf("success envelope must carry data only: %+v", env)
	}
	if env.Timestamp == "" {
		t.Fatal("timestamp missing")
	}
}

func TestFromErrorValidation(t *testing.T) {
	err := apierr.Validation([]apierr.FieldError{{Field: "name", Message: "required"}})
	w, env := record(t, func(c *gin.Context) { FromError(c, err) })
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Success || env.Errors == nil {
		t.Fatalf("validation failure must carry field errors: %+v", env)
	}
}

func TestFromErrorNotFound(t *testing.T) {
	w, env := record(t, func(c *gin.Context) { FromError(c, apierr.NotFound("order")) })
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env.Message != "order not found" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestFromErrorInvalidTransition(t *testing.T) {
	w, env := record(t, func(c *gin.Context) {
		FromError(c, apierr.InvalidTransition("completed", "pending"))
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env.Message != "cannot change status from completed to pending" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestFromErrorHidesInternalDetail(t *testing.T) {
	cause := errors.New("pq: connection refused")
	w, env := record(t, func(c *gin.Context) { FromError(c, apierr.Internal(cause)) })
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}

func TestFromErrorUnclassified(t *testing.T) {
	w, env := record(t, func(c *gin.Context) { FromError(c, errors.New("boom")) })
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("message = %q", env.Message)
	}
}
