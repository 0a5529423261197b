package v1

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/pkg/logger"
)

const maxPhotoSize = 10 << 20

// uploadPhotos stores every file from the named multipart field under a
// fresh uuid key and returns the keys in upload order. On any failure it
// writes the error response itself and reports false.
func (h *Handler) uploadPhotos(c *gin.Context, field, prefix string) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		failResponse(c, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	files := form.File[field]
	keys := make([]string, 0, len(files))
	for _, fileHeader := range files {
		key, ok := h.uploadOne(c, fileHeader, prefix)
		if !ok {
			return nil, false
		}
		keys = append(keys, key)
	}

	return keys, true
}

func (h *Handler) uploadOne(c *gin.Context, fileHeader *multipart.FileHeader, prefix string) (string, bool) {
	if fileHeader.Size > maxPhotoSize {
		failResponse(c, http.StatusBadRequest, "photo is too large")
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("open uploaded photo failed", zap.Error(err), zap.String("filename", fileHeader.Filename))
		failResponse(c, http.StatusInternalServerError, "something went wrong")
		return "", false
	}
	defer file.Close()

	key := prefix + "/" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if _, err := h.storage.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType); err != nil {
		logger.Error("upload photo failed", zap.Error(err), zap.String("key", key))
		failResponse(c, http.StatusInternalServerError, "something went wrong")
		return "", false
	}

	return key, true
}
