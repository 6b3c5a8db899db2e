package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/flarexio/consultant"
	"github.com/flarexio/consultant/llm"
)

func newTestRouter(result *consultant.Answer, err error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	endpoint := func(ctx context.Context, request any) (any, error) {
		if err != nil {
			return nil, err
		}

		return result, nil
	}

	r := gin.New()
	r.POST("/ask", AskHandler(endpoint))

	return r
}

func TestAskHandler(t *testing.T) {
	assert := assert.New(t)

	answer := &consultant.Answer{
		Text:   "A sensible starting budget is between 300 and 1500 dollars per month.",
		Source: "Budgeting is the question small businesses ask most.",
		Status: consultant.StatusAnsweredFromContext,
	}

	r := newTestRouter(answer, nil)

	body := `{"question": "How much should a small business budget for Google Ads?"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)

	var resp consultant.Answer
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(answer.Text, resp.Text)
	assert.Equal(consultant.StatusAnsweredFromContext, resp.Status)
}

func TestAskHandlerBadRequest(t *testing.T) {
	assert := assert.New(t)

	r := newTestRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusBadRequest, w.Code)
}

func TestAskHandlerIndexNotReady(t *testing.T) {
	assert := assert.New(t)

	r := newTestRouter(nil, consultant.ErrIndexNotReady)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "anything"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusInternalServerError, w.Code)
	assert.Equal("vector index is not available", w.Body.String())
}

func TestAskHandlerUpstreamTimeout(t *testing.T) {
	assert := assert.New(t)

	r := newTestRouter(nil, llm.ErrUpstreamTimeout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "anything"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusGatewayTimeout, w.Code)
}

func TestAskHandlerOpaqueError(t *testing.T) {
	assert := assert.New(t)

	internal := errors.New("connection refused to 10.0.0.7:11434")
	r := newTestRouter(nil, internal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "anything"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(http.StatusInternalServerError, w.Code)
	assert.NotContains(w.Body.String(), "10.0.0.7", "internal error detail must not leak to callers")
}
