package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

// Room for the text fields and multipart framing on top of the document.
const multipartOverhead = 1 << 20

// documentFieldNames are tried in order; "file" is what the app sends.
var documentFieldNames = []string{"file", "document", "documento", "archivo"}

// parseOrderForm reads the create-order multipart request. It writes the
// 400 response itself and reports false when the request is unusable. The
// returned document must be closed by the caller.
func parseOrderForm(c *gin.Context, maxUploadSize int64) (services.CreateOrderInput, *services.Document, multipart.File, bool) {
	var in services.CreateOrderInput

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+multipartOverhead)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return in, nil, nil, false
	}

	var form models.CreateOrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return in, nil, nil, false
	}

	copies, err := parseCopies(form.Copies)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_input", Message: err.Error()})
		return in, nil, nil, false
	}
	color, err := parseColor(form.Color)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_input", Message: err.Error()})
		return in, nil, nil, false
	}

	in = services.CreateOrderInput{
		Description: form.Description,
		Copies:      copies,
		Color:       color,
	}

	header := documentHeader(c.Request.MultipartForm)
	if header == nil {
		available := make([]string, 0, len(c.Request.MultipartForm.File))
		for name := range c.Request.MultipartForm.File {
			available = append(available, name)
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_input",
			Message: fmt.Sprintf("a document is required in one of the fields %v, got %v", documentFieldNames, available),
		})
		return in, nil, nil, false
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_input",
			Message: fmt.Sprintf("the document exceeds %d bytes", maxUploadSize),
		})
		return in, nil, nil, false
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open document", Message: err.Error()})
		return in, nil, nil, false
	}

	doc := &services.Document{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}
	return in, doc, file, true
}

func documentHeader(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, name := range documentFieldNames {
		if files := form.File[name]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

// parseCopies defaults to one copy when the field is left empty.
func parseCopies(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("n_copias must be a whole number, got %q", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("n_copias must be at least 1")
	}
	return n, nil
}

func parseColor(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "no":
		return false, nil
	case "true", "1", "si", "sí", "yes":
		return true, nil
	}
	return false, fmt.Errorf("a_color must be true or false, got %q", raw)
}
