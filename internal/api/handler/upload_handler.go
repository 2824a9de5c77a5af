package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/metrics"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

type UploadHandler struct {
	uploadService ports.UploadService
}

func NewUploadHandler(uploadService ports.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type uploadRequest struct {
	FileName string `json:"fileName"`
	DataURL  string `json:"dataUrl" validate:"required"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores a base64 data-URL image and returns its public path.
func (h *UploadHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	url, err := h.uploadService.Store(c.Request().Context(), req.FileName, req.DataURL)
	if err != nil {
		return err
	}
	metrics.UploadsStoredTotal.WithLabelValues(mediaTypeOf(req.DataURL)).Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}

// mediaTypeOf extracts the declared media type for the metric label; the
// service has already validated it against the allow-list.
func mediaTypeOf(dataURL string) string {
	rest := strings.TrimPrefix(dataURL, "data:")
	if i := strings.IndexByte(rest, ';'); i > 0 {
		return rest[:i]
	}
	return "unknown"
}
