package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	testhelpers "github.com/allmart/backoffice/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	engine := gin.New()
	engine.Handle(method, "/route/:id", func(c *gin.Context) { handler(c) })
	engine.Handle(method, "/route", func(c *gin.Context) { handler(c) })

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginSuccess(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		LoginFn: func(ctx context.Context, user, password string) (string, model.Role, error) {
			if user != "admin" || password != "admin123" {
				t.Fatalf("unexpected credentials %q/%q", user, password)
			}
			return "issued", model.RoleAdmin, nil
		},
	}
	handler := NewAuthHandler(facade)

	recorder := performJSON(handler.Login, http.MethodPost, "/route", `{"user":"admin","password":"admin123"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "issued" || resp.Role != "admin" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if got := recorder.Header().Get("Authorization"); got != "Bearer issued" {
		t.Fatalf("unexpected authorization header %q", got)
	}
}

func TestLoginBadRequest(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})

	for _, body := range []string{"", "{broken", `{"user":"","password":"x"}`, `{"user":"x","password":""}`} {
		recorder := performJSON(handler.Login, http.MethodPost, "/route", body)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("body %q: unexpected status %d", body, recorder.Code)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		LoginFn: func(context.Context, string, string) (string, model.Role, error) {
			return "", "", domainErrors.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(facade)

	recorder := performJSON(handler.Login, http.MethodPost, "/route", `{"user":"ghost","password":"nope"}`)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestLoginInternalError(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		LoginFn: func(context.Context, string, string) (string, model.Role, error) {
			return "", "", errors.New("storage down")
		},
	}
	handler := NewAuthHandler(facade)

	recorder := performJSON(handler.Login, http.MethodPost, "/route", `{"user":"admin","password":"admin123"}`)
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}
