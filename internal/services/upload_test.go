package services_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/services"
	"printshop-backend/internal/services/servicetest"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "syllabus.pdf", "syllabus.pdf"},
		{"spaces and accents", "Apuntes de física.pdf", "Apuntes_de_f_sica.pdf"},
		{"path separators", "../etc/passwd", ".._etc_passwd"},
		{"empty", "  ", "documento"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.SanitizeFileName(tt.in))
		})
	}
}

func TestDocumentPath(t *testing.T) {
	at := time.UnixMilli(1709283600123)
	assert.Equal(t, "7/1709283600123_Tema_1.pdf", services.DocumentPath(7, at, "Tema 1.pdf"))
}

func TestDetectContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	assert.Equal(t, "application/pdf", services.DetectContentType("application/pdf", png))
	assert.Equal(t, "image/png", services.DetectContentType("", png))
	assert.Equal(t, "image/png", services.DetectContentType("application/octet-stream", png))
	assert.Equal(t, "application/pdf", services.DetectContentType("", []byte("%PDF-1.7\n")))
}

func TestDocumentUploader_Store(t *testing.T) {
	bucket := servicetest.NewBucket()
	uploader := services.NewDocumentUploader(bucket, 1024)

	stored, err := uploader.Store(7, services.Document{
		Name:   "foto de la pizarra.jpg",
		Reader: bytes.NewReader([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Path, "7/"))
	assert.True(t, strings.HasSuffix(stored.Path, "_foto_de_la_pizarra.jpg"))
	assert.Equal(t, servicetest.BucketURL+stored.Path, stored.URL)
	assert.Equal(t, "image/jpeg", stored.ContentType)
	assert.Equal(t, "image/jpeg", bucket.Types[stored.Path])
	assert.True(t, bucket.Has(stored.Path))
}

func TestDocumentUploader_StoreRejectsBadInput(t *testing.T) {
	bucket := servicetest.NewBucket()
	uploader := services.NewDocumentUploader(bucket, 8)

	_, err := uploader.Store(7, services.Document{Name: "a.pdf", Reader: strings.NewReader("")})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = uploader.Store(7, services.Document{Name: "a.pdf", Reader: strings.NewReader("123456789")})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = uploader.Store(7, services.Document{Name: "a.pdf"})
	assert.ErrorIs(t, err, services.ErrValidation)

	assert.Zero(t, bucket.Len())
}

func TestDocumentUploader_DiscardURL(t *testing.T) {
	bucket := servicetest.NewBucket()
	uploader := services.NewDocumentUploader(bucket, 1024)
	require.NoError(t, bucket.Upload("7/1_a.pdf", "application/pdf", []byte("x")))

	uploader.DiscardURL("https://elsewhere.example.com/a.pdf")
	assert.Equal(t, 1, bucket.Len())

	uploader.DiscardURL(servicetest.BucketURL + "7/1_a.pdf")
	assert.Zero(t, bucket.Len())
}
