package media

import (
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Rejection messages shown to users.
const (
	MsgTooLarge = "Image must be less than 5MB"
	MsgBadType  = "Only JPEG, PNG, WEBP and GIF images are allowed"
	MsgEmpty    = "Image file is empty"
)

// allowedTypes maps accepted MIME types to their canonical extension.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// allowedExts lists file extensions that may accompany an accepted type.
var allowedExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "webp": true, "gif": true,
}

// NormalizeType lower-cases a MIME type and drops parameters.
func NormalizeType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// Allowed reports whether contentType is an accepted image type.
func Allowed(contentType string) bool {
	_, ok := allowedTypes[NormalizeType(contentType)]
	return ok
}

// Check applies the local upload preconditions and returns the extension
// to use in the storage key.
func (s *Service) Check(f File) (string, error) {
	switch {
	case f.Size <= 0:
		return "", &domain.MediaError{Reason: MsgEmpty}
	case f.Size > s.maxBytes:
		return "", &domain.MediaError{Reason: MsgTooLarge}
	}

	canonical, ok := allowedTypes[NormalizeType(f.ContentType)]
	if !ok {
		return "", &domain.MediaError{Reason: MsgBadType}
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(f.Name), "."))
	switch {
	case ext == "":
		ext = canonical
	case !allowedExts[ext]:
		return "", &domain.MediaError{Reason: MsgBadType}
	}
	return ext, nil
}

// StorageKey builds "<ownerID>/<unix-millis>.<ext>".
func StorageKey(ownerID uuid.UUID, at time.Time, ext string) string {
	return ownerID.String() + "/" + strconv.FormatInt(at.UnixMilli(), 10) + "." + ext
}
