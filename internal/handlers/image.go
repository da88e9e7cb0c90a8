package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"showbook/internal/logging"
	"showbook/internal/services"
)

const maxImageSize = 10 << 20

// receiveImage stores the multipart "image" field and returns its URL. On
// failure it has already written the error response.
func receiveImage(w http.ResponseWriter, r *http.Request, store services.ImageStore, prefix string) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "too_large", "Image must be at most 10 MB")
			return "", false
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "image is required")
		return "", false
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeJSONErrorResponse(w, http.StatusRequestEntityTooLarge, "too_large", "Image must be at most 10 MB")
		return "", false
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to read image")
		return "", false
	}
	contentType := http.DetectContentType(sniff[:n])
	if !strings.HasPrefix(contentType, "image/") {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "image must be an image file")
		return "", false
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Failed to read image")
		return "", false
	}

	url, err := store.Upload(r.Context(), prefix, header.Filename, contentType, file)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("file", header.Filename).Msg("image upload failed")
		writeJSONErrorResponse(w, http.StatusBadGateway, "upload_failed", "Failed to upload image")
		return "", false
	}
	return url, true
}
