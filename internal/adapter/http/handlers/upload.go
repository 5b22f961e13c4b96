package handlers

import (
	"mime/multipart"
	"net/http"

	"m2_studio/internal/usecase"
	"m2_studio/pkg"

	"github.com/gin-gonic/gin"
)

const (
	formFileField = "file"
	maxUploadSize = 2 << 30
)

var errMissingFile = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "file: required", http.StatusBadRequest)

// openUpload streams the multipart "file" field. The caller must close the
// returned file.
func openUpload(c *gin.Context) (usecase.FileUpload, multipart.File, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	header, err := c.FormFile(formFileField)
	if err != nil {
		abortWith(c, errMissingFile)
		return usecase.FileUpload{}, nil, false
	}
	f, err := header.Open()
	if err != nil {
		abortWith(c, errMissingFile)
		return usecase.FileUpload{}, nil, false
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return usecase.FileUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        f,
	}, f, true
}
