package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/textscan"
	"github.com/mikey/fraud-detector/internal/utils"
)

// Handler handles HTTP requests for fraud analysis
type Handler struct {
	service        *core.FraudDetectionService
	classifier     *textscan.Classifier
	text           *utils.TextProcessor
	logger         *zap.Logger
	maxContentSize int
	maxImageSize   int64
}

// NewHandler creates a new analysis handler
func NewHandler(
	service *core.FraudDetectionService,
	classifier *textscan.Classifier,
	text *utils.TextProcessor,
	logger *zap.Logger,
	maxContentSize int,
	maxImageSize int64,
) *Handler {
	return &Handler{
		service:        service,
		classifier:     classifier,
		text:           text,
		logger:         logger,
		maxContentSize: maxContentSize,
		maxImageSize:   maxImageSize,
	}
}

// AnalyzeURL scores a URL
// POST /api/analyze/url
func (h *Handler) AnalyzeURL(c *gin.Context) {
	requestID := uuid.NewString()

	var req URLAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: "url is required"})
		return
	}

	start := time.Now()
	result := h.service.AnalyzeURL(c.Request.Context(), req.URL)
	elapsed := time.Since(start)

	h.logger.Info("URL analyzed",
		zap.String("request_id", requestID),
		zap.Int("score", result.Score),
		zap.String("tier", string(result.RiskTier)),
		zap.Duration("elapsed", elapsed))

	c.JSON(http.StatusOK, toResponse(requestID, result, elapsed))
}

// AnalyzeEmail scores message content with an optional sender address
// POST /api/analyze/email
func (h *Handler) AnalyzeEmail(c *gin.Context) {
	requestID := uuid.NewString()

	var req EmailAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: "content is required"})
		return
	}

	content := h.text.ProcessText(req.Content, h.maxContentSize)

	start := time.Now()
	result := h.service.AnalyzeText(content, req.SenderEmail)
	elapsed := time.Since(start)

	h.logger.Info("Email analyzed",
		zap.String("request_id", requestID),
		zap.Int("score", result.Score),
		zap.String("tier", string(result.RiskTier)),
		zap.Duration("elapsed", elapsed))

	c.JSON(http.StatusOK, toResponse(requestID, result, elapsed))
}

// AnalyzePhone scores a phone number
// POST /api/analyze/phone
func (h *Handler) AnalyzePhone(c *gin.Context) {
	requestID := uuid.NewString()

	var req PhoneAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: "phone_number is required"})
		return
	}

	start := time.Now()
	result := h.service.AnalyzePhone(req.PhoneNumber)
	elapsed := time.Since(start)

	h.logger.Info("Phone number analyzed",
		zap.String("request_id", requestID),
		zap.Int("score", result.Score),
		zap.String("tier", string(result.RiskTier)),
		zap.Duration("elapsed", elapsed))

	c.JSON(http.StatusOK, toResponse(requestID, result, elapsed))
}

// AnalyzeImage scores an uploaded image
// POST /api/analyze/image
func (h *Handler) AnalyzeImage(c *gin.Context) {
	requestID := uuid.NewString()

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: "image file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{RequestID: requestID, Error: "failed to read image"})
		return
	}
	if int64(len(data)) > h.maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{RequestID: requestID, Error: "image exceeds size limit"})
		return
	}

	start := time.Now()
	result := h.service.AnalyzeImage(c.Request.Context(), data)
	elapsed := time.Since(start)

	h.logger.Info("Image analyzed",
		zap.String("request_id", requestID),
		zap.Int("score", result.Score),
		zap.String("tier", string(result.RiskTier)),
		zap.Duration("elapsed", elapsed))

	c.JSON(http.StatusOK, toResponse(requestID, result, elapsed))
}

// Health reports service liveness and classifier state
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Classifier: h.classifier.State().String(),
	})
}
