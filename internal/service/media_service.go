package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/synchomes/synchomes-api/internal/config"
)

// Sentinel errors for media uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Allowed image MIME types.
var allowedMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Formats the service can decode and downscale.
var resizableFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
}

// maxDecodePixels bounds the canvas of an image before it is decoded.
const maxDecodePixels = 40_000_000

// MediaService stores uploaded images on local disk.
type MediaService struct {
	uploadDir    string
	urlPrefix    string
	maxBytes     int64
	maxDimension int
	maxPixels    int
}

// NewMediaService creates a new MediaService.
func NewMediaService(cfg *config.Config) *MediaService {
	return &MediaService{
		uploadDir:    cfg.UploadDir,
		urlPrefix:    strings.TrimRight(cfg.UploadURLPrefix, "/"),
		maxBytes:     cfg.MaxUploadBytes,
		maxDimension: cfg.MaxImageDimension,
		maxPixels:    maxDecodePixels,
	}
}

// SaveUpload saves an uploaded image under a UUID filename and returns the
// public URL path it is served from. Oversized JPEG/PNG images are scaled down
// to fit within the configured dimension.
func (s *MediaService) SaveUpload(header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.maxBytes)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	// Trust the bytes, not the client-declared Content-Type.
	contentType := http.DetectContentType(data)
	ext, ok := allowedMIMETypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s (allowed: %s)",
			ErrUnsupportedFileType, contentType, strings.Join(allowedTypes(), ", "))
	}

	if format, ok := resizableFormats[contentType]; ok {
		data, err = s.fit(data, format)
		if err != nil {
			return "", err
		}
	}

	// Ensure upload directory exists.
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.urlPrefix + "/" + filename, nil
}

// Owns reports whether publicPath points into the upload directory.
func (s *MediaService) Owns(publicPath string) bool {
	if !strings.HasPrefix(publicPath, s.urlPrefix+"/") {
		return false
	}
	name := strings.TrimPrefix(publicPath, s.urlPrefix+"/")
	return name != "" && !strings.ContainsAny(name, "/\\") && name != ".." && name != "."
}

// Remove deletes a file previously returned by SaveUpload. Paths outside the
// upload prefix are ignored.
func (s *MediaService) Remove(publicPath string) error {
	if !s.Owns(publicPath) {
		return nil
	}
	name := path.Base(publicPath)
	err := os.Remove(filepath.Join(s.uploadDir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// fit decodes data and re-encodes it scaled down when it exceeds maxDimension.
func (s *MediaService) fit(data []byte, format imaging.Format) ([]byte, error) {
	// Read the header only; the byte cap does not bound the decoded size.
	conf, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable image", ErrUnsupportedFileType)
	}
	if conf.Width <= 0 || conf.Height <= 0 || conf.Width > s.maxPixels/conf.Height {
		return nil, fmt.Errorf("%w: %dx%d pixels (max: %d)", ErrFileTooLarge, conf.Width, conf.Height, s.maxPixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable image", ErrUnsupportedFileType)
	}

	if s.maxDimension <= 0 {
		return data, nil
	}
	b := img.Bounds()
	if b.Dx() <= s.maxDimension && b.Dy() <= s.maxDimension {
		return data, nil
	}

	resized := imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

func allowedTypes() []string {
	types := make([]string, 0, len(allowedMIMETypes))
	for t := range allowedMIMETypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
