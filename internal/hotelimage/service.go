package hotelimage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventpass/hotel-booking-backend/internal/hotel"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/storage"
)

// Service manages hotel photos: uploads go to sharded storage paths with a
// generated thumbnail, downloads stream back from storage.
type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, hotelID int64) (*Image, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Image, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error)
}

const (
	thumbnailMaxWidth  = 400
	thumbnailMaxHeight = 400
)

type service struct {
	repo      Repository
	hotelRepo hotel.Repository
	storage   storage.Storage
	imgProc   *storage.ImageProcessor
}

func NewService(repo Repository, hotelRepo hotel.Repository, store storage.Storage) Service {
	return &service{
		repo:      repo,
		hotelRepo: hotelRepo,
		storage:   store,
		imgProc:   storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, hotelID int64) (*Image, error) {
	h, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperror.NotFound("hotel", hotelID)
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Hotel photos are small; buffering allows saving and thumbnailing from
	// the same bytes.
	imageBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	imageID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Sharded path: hotels/ab/UUID.ext
	shard := imageID[:2]
	storagePath := fmt.Sprintf("hotels/%s/%s%s", shard, imageID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(imageBytes)); err != nil {
		return nil, fmt.Errorf("failed to save image to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(imageBytes), thumbnailMaxWidth, thumbnailMaxHeight)
	if err == nil {
		tPath := fmt.Sprintf("hotels/%s/%s_thumb.jpg", shard, imageID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	img := &Image{
		ID:            imageID,
		HotelID:       hotelID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// Best-effort cleanup of orphaned storage objects.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return img, nil
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, img.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve image from storage: %w", err)
	}

	return stream, img, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if img.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *img.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, img, nil
}
