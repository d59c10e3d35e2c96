package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/export"
	"github.com/dramhound/dramhound/internal/repository"
	"github.com/dramhound/dramhound/internal/trawler"
)

type handler struct {
	svc        *trawler.Service
	bars       repository.BarRepository
	listings   repository.ListingRepository
	exporter   *export.Service
	batchDelay time.Duration
	logger     *slog.Logger
}

func newHandler(
	svc *trawler.Service,
	bars repository.BarRepository,
	listings repository.ListingRepository,
	exporter *export.Service,
	batchDelay time.Duration,
	logger *slog.Logger,
) *handler {
	return &handler{
		svc:        svc,
		bars:       bars,
		listings:   listings,
		exporter:   exporter,
		batchDelay: batchDelay,
		logger:     logger,
	}
}

type createBarRequest struct {
	Name       string  `json:"name" binding:"required"`
	WebsiteURL *string `json:"website_url,omitempty"`
}

func (h *handler) CreateBar(c *gin.Context) {
	var req createBarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	bar, err := h.bars.Create(c.Request.Context(), req.Name, req.WebsiteURL)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bar)
}

type imagePayload struct {
	Data     string `json:"data" binding:"required"` // base64
	MIMEType string `json:"mime_type" binding:"required"`
}

type trawlRequest struct {
	BarID       uuid.UUID     `json:"bar_id" binding:"required"`
	URL         *string       `json:"url,omitempty"`
	Image       *imagePayload `json:"image,omitempty"`
	SubmittedBy *string       `json:"submitted_by,omitempty"`
}

// Trawl accepts exactly one source: a menu page URL or an uploaded image.
func (h *handler) Trawl(c *gin.Context) {
	var req trawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if (req.URL == nil) == (req.Image == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of url or image must be provided"})
		return
	}

	ctx := c.Request.Context()

	if req.URL != nil {
		out, err := h.svc.TrawlURL(ctx, trawler.TrawlURLRequest{
			BarID:       req.BarID,
			URL:         *req.URL,
			SubmittedBy: req.SubmittedBy,
		})
		h.renderTrawl(c, out, err)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Image.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image data is not valid base64"})
		return
	}
	out, err := h.svc.TrawlImage(ctx, trawler.TrawlImageRequest{
		BarID:       req.BarID,
		Data:        data,
		MIMEType:    req.Image.MIMEType,
		SubmittedBy: req.SubmittedBy,
	})
	h.renderTrawl(c, out, err)
}

type batchRequest struct {
	BarID       uuid.UUID `json:"bar_id" binding:"required"`
	URLs        []string  `json:"urls" binding:"required,min=1,max=20"`
	SubmittedBy *string   `json:"submitted_by,omitempty"`
}

func (h *handler) TrawlBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	items, err := h.svc.RunBatch(c.Request.Context(), trawler.BatchRequest{
		BarID:       req.BarID,
		URLs:        req.URLs,
		SubmittedBy: req.SubmittedBy,
		Delay:       h.batchDelay,
	})
	if err != nil {
		// a cancelled batch still reports the items that finished
		status, body := statusFor(err)
		if len(items) > 0 {
			body["items"] = items
			body["count"] = len(items)
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *handler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.svc.Job(c.Request.Context(), jobID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *handler) GetMenu(c *gin.Context) {
	barID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bar id"})
		return
	}

	bar, err := h.bars.GetByID(c.Request.Context(), barID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	items, err := h.listings.ListMenu(c.Request.Context(), barID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bar": bar, "items": items, "count": len(items)})
}

func (h *handler) ExportMenu(c *gin.Context) {
	barID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bar id"})
		return
	}

	data, err := h.exporter.ExportMenuXLSX(c.Request.Context(), barID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	filename := fmt.Sprintf("menu-%s.xlsx", barID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// renderTrawl maps a pipeline outcome onto the wire. A failed pipeline still
// has a job; the response includes it so the caller can poll or retry.
func (h *handler) renderTrawl(c *gin.Context, out *trawler.Outcome, err error) {
	if err == nil {
		c.JSON(http.StatusOK, out)
		return
	}

	status, body := statusFor(err)
	if out != nil && out.Job != nil {
		body["job_id"] = out.Job.ID
	}
	c.JSON(status, body)
}

func (h *handler) renderError(c *gin.Context, err error) {
	status, body := statusFor(err)
	c.JSON(status, body)
}

// statusFor maps the error taxonomy onto HTTP statuses. Internal details stay
// out of 5xx bodies.
func statusFor(err error) (int, gin.H) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, common.ErrSafetyRejected):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error()}
	case errors.Is(err, common.ErrJobTerminal), errors.Is(err, common.ErrConflict):
		return http.StatusConflict, gin.H{"error": err.Error()}
	case errors.Is(err, common.ErrFetch), errors.Is(err, common.ErrExtraction):
		return http.StatusBadGateway, gin.H{"error": "upstream processing failed"}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal error"}
	}
}
