package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"random-number-api/internal/models"
	"random-number-api/internal/services"
	"random-number-api/pkg/lambda"
)

// DefaultSampleCount is used when the sample endpoint gets no count parameter
const DefaultSampleCount = 1000

// RandomHandler handles random number requests
type RandomHandler struct {
	randomService services.RandomService
}

// NewRandomHandler creates a new random handler
func NewRandomHandler(randomService services.RandomService) *RandomHandler {
	return &RandomHandler{
		randomService: randomService,
	}
}

// @Summary Get a random number
// @Description Generate a uniformly distributed random integer between 0 and 100
// @Tags random
// @Accept json
// @Produce json
// @Success 200 {string} string "\"Random number: 42\""
// @Failure 500 {object} ErrorResponse
// @Router /random [get]
func (h *RandomHandler) GetRandomNumber(c *gin.Context) {
	draw, err := h.randomService.Draw(c.Request.Context(), &services.DrawRequest{
		Source: models.DrawSourceHTTP,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate random number",
			Message: err.Error(),
		})
		return
	}

	body, err := json.Marshal(draw.Message())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to marshal response",
			Message: err.Error(),
		})
		return
	}

	// Same bytes the Lambda surface returns as the response body
	c.Data(http.StatusOK, "application/json", body)
}

// @Summary Get a draw record
// @Description Generate a random number and return the full draw record
// @Tags random
// @Accept json
// @Produce json
// @Success 200 {object} models.Draw
// @Failure 500 {object} ErrorResponse
// @Router /random/draw [get]
func (h *RandomHandler) GetDraw(c *gin.Context) {
	draw, err := h.randomService.Draw(c.Request.Context(), &services.DrawRequest{
		Source: models.DrawSourceHTTP,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate random number",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, draw)
}

// @Summary Sample the distribution
// @Description Run repeated draws and return frequency statistics over the range
// @Tags random
// @Accept json
// @Produce json
// @Param count query int false "Number of draws" default(1000)
// @Success 200 {object} services.SampleResult
// @Failure 500 {object} ErrorResponse
// @Router /random/sample [get]
func (h *RandomHandler) SampleDistribution(c *gin.Context) {
	count := DefaultSampleCount
	if countStr := c.Query("count"); countStr != "" {
		if val, err := strconv.Atoi(countStr); err == nil && val > 0 && val <= services.DefaultMaxSampleCount {
			count = val
		}
	}

	result, err := h.randomService.Sample(c.Request.Context(), &services.SampleRequest{
		Count:  count,
		Source: models.DrawSourceHTTP,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to sample distribution",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Lambda handler methods

// HandleInvocation handles one invocation and builds the response record.
// Errors propagate to the entry point, which owns the 500 mapping.
func (h *RandomHandler) HandleInvocation(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	draw, err := h.randomService.Draw(ctx, &services.DrawRequest{
		Source: models.DrawSourceLambda,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate draw: %w", err)
	}

	body, err := json.Marshal(draw.Message())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response body: %w", err)
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
