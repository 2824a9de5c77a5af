package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

var (
	dataURLPattern  = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	trailingExt     = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)
)

// extensions is the image media-type allow-list.
var extensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// UploadService decodes base64 data-URL uploads and stores them under the
// uploads directory with collision-resistant, time-ordered names.
type UploadService struct {
	dir      string
	maxBytes int64
	logger   zerolog.Logger
}

func NewUploadService(dir string, maxBytes int64, logger zerolog.Logger) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	return &UploadService{dir: dir, maxBytes: maxBytes, logger: logger}, nil
}

func (s *UploadService) Store(ctx context.Context, fileNameHint, dataURL string) (string, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", domain.ErrValidation
	}
	mediaType := m[1]

	ext, ok := extensions[mediaType]
	if !ok {
		return "", domain.ErrUnsupportedMediaType
	}

	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", domain.ErrValidation
	}
	if int64(len(raw)) > s.maxBytes {
		return "", domain.ErrPayloadTooLarge
	}

	name := buildFileName(fileNameHint, ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	s.logger.Info().Str("file", name).Str("media_type", mediaType).Int("bytes", len(raw)).Msg("upload stored")
	return "/uploads/" + name, nil
}

// buildFileName sanitizes the client hint and prefixes it with a millisecond
// timestamp and a random fragment, so names sort by time and never collide.
func buildFileName(hint, ext string) string {
	base := filepath.Base(strings.TrimSpace(hint))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload" + ext
	}
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = trailingExt.ReplaceAllString(base, "")

	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d_%s_%s%s", time.Now().UnixMilli(), fragment, base, ext)
}
