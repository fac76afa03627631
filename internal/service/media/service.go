// Package media validates item images and writes them to object storage.
package media

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// objectStore is the write side of the image bucket.
type objectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PublicURL(key string) string
}

type uploadRecorder interface {
	UploadObserved(outcome string, size int64)
}

// MaxImageBytes is the largest accepted image.
const MaxImageBytes int64 = 5 * 1024 * 1024

// Upload outcomes reported to the recorder.
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// File is an image submitted by a client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service validates and stores item images.
type Service struct {
	log      *slog.Logger
	store    objectStore
	sessions session.Source
	metrics  uploadRecorder
	maxBytes int64
	now      func() time.Time
}

// NewService creates a media service. maxBytes <= 0 or above MaxImageBytes
// falls back to MaxImageBytes.
func NewService(
	logger *slog.Logger,
	store objectStore,
	sessions session.Source,
	metrics uploadRecorder,
	maxBytes int64,
) *Service {
	if maxBytes <= 0 || maxBytes > MaxImageBytes {
		maxBytes = MaxImageBytes
	}
	return &Service{
		log:      logger.With("service", "media"),
		store:    store,
		sessions: sessions,
		metrics:  metrics,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// WithClock replaces the timestamp source used for storage keys.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Upload validates f, stores it under the caller's namespace and returns its
// public URL.
func (s *Service) Upload(ctx context.Context, f File) (string, error) {
	id, err := session.Require(ctx, s.sessions)
	if err != nil {
		return "", err
	}
	return s.UploadFor(ctx, id.ID, f)
}

// UploadFor validates f and stores it under ownerID's namespace.
// Precondition failures return a *domain.MediaError without touching the
// store; store failures wrap domain.ErrUploadFailed.
func (s *Service) UploadFor(ctx context.Context, ownerID uuid.UUID, f File) (string, error) {
	ext, err := s.Check(f)
	if err != nil {
		s.metrics.UploadObserved(OutcomeRejected, f.Size)
		return "", err
	}

	key := StorageKey(ownerID, s.now(), ext)
	if err := s.store.Put(ctx, key, NormalizeType(f.ContentType), f.Body, f.Size); err != nil {
		s.metrics.UploadObserved(OutcomeFailed, f.Size)
		s.log.ErrorContext(ctx, "image upload failed",
			slog.String("owner_id", ownerID.String()),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", &UploadError{Key: key, Err: err}
	}

	s.metrics.UploadObserved(OutcomeStored, f.Size)
	s.log.InfoContext(ctx, "image uploaded",
		slog.String("owner_id", ownerID.String()),
		slog.String("key", key),
		slog.Int64("size", f.Size),
	)

	return s.store.PublicURL(key), nil
}

// UploadError is a store write failure. It unwraps to domain.ErrUploadFailed.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string { return "upload " + e.Key + ": " + e.Err.Error() }

// Is lets errors.Is match domain.ErrUploadFailed.
func (e *UploadError) Is(target error) bool { return target == domain.ErrUploadFailed }

func (e *UploadError) Unwrap() error { return e.Err }
