package services

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// Document is a file picked or photographed on the device, as received in
// the multipart request.
type Document struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type StoredDocument struct {
	Path        string
	URL         string
	ContentType string
	Size        int
}

// DocumentUploader writes order documents to the bucket under a
// per-client folder.
type DocumentUploader struct {
	store   DocumentStore
	maxSize int64
	now     func() time.Time
}

func NewDocumentUploader(store DocumentStore, maxSize int64) *DocumentUploader {
	return &DocumentUploader{store: store, maxSize: maxSize, now: time.Now}
}

// Store reads the whole document into memory, uploads it and resolves its
// public URL.
func (u *DocumentUploader) Store(clientID int64, doc Document) (*StoredDocument, error) {
	if doc.Reader == nil {
		return nil, fmt.Errorf("%w: a document is required", ErrValidation)
	}

	data, err := io.ReadAll(io.LimitReader(doc.Reader, u.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read document: %v", ErrUpload, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: the document is empty", ErrValidation)
	}
	if int64(len(data)) > u.maxSize {
		return nil, fmt.Errorf("%w: the document exceeds %d bytes", ErrValidation, u.maxSize)
	}

	contentType := DetectContentType(doc.ContentType, data)
	path := DocumentPath(clientID, u.now(), doc.Name)

	if err := u.store.Upload(path, contentType, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return &StoredDocument{
		Path:        path,
		URL:         u.store.PublicURL(path),
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

// Discard removes an uploaded document. Failures are only logged; the
// orphan sweeper picks up whatever is left behind.
func (u *DocumentUploader) Discard(path string) {
	if err := u.store.Remove(path); err != nil {
		zap.L().Warn("failed to remove document", zap.String("path", path), zap.Error(err))
	}
}

// DiscardURL removes the document behind a public URL, if it belongs to
// the bucket.
func (u *DocumentUploader) DiscardURL(url string) {
	path, ok := u.store.PathFromURL(url)
	if !ok {
		zap.L().Warn("document url outside bucket, not removed", zap.String("url", url))
		return
	}
	u.Discard(path)
}

func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "documento"
	}
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// DocumentPath builds "<clientID>/<unixMillis>_<sanitized name>".
func DocumentPath(clientID int64, at time.Time, name string) string {
	return fmt.Sprintf("%d/%d_%s", clientID, at.UnixMilli(), SanitizeFileName(name))
}

// documentTimestamp reads the upload time back from an object name built
// by DocumentPath.
func documentTimestamp(objectName string) (time.Time, bool) {
	prefix, _, found := strings.Cut(objectName, "_")
	if !found {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// DetectContentType keeps the type declared by the picker and sniffs the
// bytes when the picker gave none.
func DetectContentType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != defaultContentType {
		return declared
	}
	if detected := mimetype.Detect(data); detected != nil {
		return detected.String()
	}
	return defaultContentType
}
