package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/kit/endpoint"

	"github.com/flarexio/consultant"
	"github.com/flarexio/consultant/llm"
)

func AskHandler(endpoint endpoint.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req consultant.AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		resp, err := endpoint(ctx, req)
		if err != nil {
			// Internal error text stays in the log; callers get a
			// fixed detail message.
			c.Error(err)
			c.Abort()

			status := http.StatusInternalServerError
			if errors.Is(err, llm.ErrUpstreamTimeout) {
				status = http.StatusGatewayTimeout
			}

			c.String(status, consultant.ErrorDetail(err))
			return
		}

		c.JSON(http.StatusOK, &resp)
	}
}
