package gallery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/storage"
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, caption string, sortOrder int) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Delete(ctx context.Context, id string) error
	DownloadImage(ctx context.Context, id string) (io.ReadCloser, *Item, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Item, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, caption string, sortOrder int) (*Item, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content; gallery images are small enough for this.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	itemID := uuid.New().String()

	// Sharding path: gallery/ab/UUID.ext
	shard := itemID[:2]
	storagePath := fmt.Sprintf("gallery/%s/%s%s", shard, itemID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save file to storage: %w", err)
	}

	// Thumbnail failure never fails the upload.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 400, 300)
	if err == nil {
		tPath := fmt.Sprintf("gallery/%s/%s_thumb.jpg", shard, itemID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	} else {
		log.Printf("failed to generate thumbnail for %s: %v", itemID, err)
	}

	item := &Item{
		ID:            itemID,
		Caption:       strings.TrimSpace(caption),
		SortOrder:     sortOrder,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		// Cleanup storage if db fails
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return item, nil
}

func (s *service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the row is the source of truth.
	if err := s.storage.Delete(ctx, item.StoragePath); err != nil {
		log.Printf("failed to delete gallery file %s: %v", item.StoragePath, err)
	}
	if item.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *item.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) DownloadImage(ctx context.Context, id string) (io.ReadCloser, *Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, item.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve file from storage: %w", err)
	}

	return stream, item, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if item.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *item.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, item, nil
}
