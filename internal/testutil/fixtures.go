package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/synchomes/synchomes-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Config returns a development config with a temporary upload directory
// and the cheapest bcrypt cost.
func Config(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerPort:        "0",
		AppEnv:            config.EnvDevelopment,
		GinMode:           "test",
		LogLevel:          "disabled",
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
		BcryptCost:        bcrypt.MinCost,
		UploadDir:         t.TempDir(),
		UploadURLPrefix:   "/api/uploads",
		MaxUploadBytes:    1 << 20,
		MaxImageDimension: 64,
		AdminEmail:        config.DefaultAdminEmail,
		AdminPassword:     config.DefaultAdminPassword,
		AdminName:         "Admin",
	}
}

// PNG encodes a solid w×h image.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// MultipartBody builds a multipart body from text fields and at most one file.
// It returns the body and its Content-Type.
func MultipartBody(t *testing.T, fields map[string]string, fileField, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// FileHeader wraps data in a parsed multipart file header.
func FileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	body, contentType := MultipartBody(t, nil, "image", filename, data)

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	require.NoError(t, req.ParseMultipartForm(32<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	headers := req.MultipartForm.File["image"]
	require.Len(t, headers, 1)
	return headers[0]
}
