package rest

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
)

const (
	multipartMemory = 8 << 20
	sniffLen        = 3072
	imageField      = "image"
)

// Messages for form fields that cannot be parsed at all.
const (
	MsgInvalidPrice    = "Price must be a number"
	MsgInvalidCategory = catalog.MsgCategoryNotFound
)

// readMultipart bounds the request body and parses the form, answering the
// request itself on failure. Bodies well beyond the image limit are refused
// before the media rules run.
func readMultipart(log *slog.Logger, w http.ResponseWriter, r *http.Request, maxUpload int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxUpload+multipartMemory)
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return true
	}

	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		handleError(log, w, r, &domain.MediaError{Reason: media.MsgTooLarge})
		return false
	}
	badRequest(w, "invalid multipart form")
	return false
}

// formImage returns the uploaded image, or nil when the field is absent.
// The content type is sniffed from the bytes; the client's claim is ignored.
func formImage(r *http.Request) (*media.File, func(), error) {
	file, header, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	f, err := sniffImage(file, header)
	if err != nil {
		file.Close()
		return nil, func() {}, err
	}
	return f, func() { file.Close() }, nil
}

func sniffImage(file multipart.File, header *multipart.FileHeader) (*media.File, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]

	return &media.File{
		Name:        header.Filename,
		ContentType: mimetype.Detect(head).String(),
		Size:        header.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	}, nil
}

// itemForm reads the item fields of a multipart form.
func itemForm(r *http.Request) (catalog.ItemInput, error) {
	in := catalog.ItemInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Phone:       optionalValue(r, "phone"),
	}

	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return in, domain.NewValidationError("price", MsgInvalidPrice)
		}
		in.Price = price
	}

	if raw := strings.TrimSpace(r.FormValue("category_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return in, domain.NewValidationError("category_id", MsgInvalidCategory)
		}
		in.CategoryID = &id
	}

	if raw := strings.TrimSpace(r.FormValue("status")); raw != "" {
		status := domain.ItemStatus(raw)
		in.Status = &status
	}
	return in, nil
}

func optionalValue(r *http.Request, key string) *string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return nil
	}
	v := r.FormValue(key)
	return &v
}
