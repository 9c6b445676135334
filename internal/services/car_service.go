package services

import (
	"context"
	"io"
	"strings"
	"time"

	"carhub/internal/domain/car"
	"carhub/internal/repository"
	"carhub/internal/storage"
	carhub_errors "carhub/pkg/errors"
	"carhub/pkg/logger"

	"github.com/google/uuid"
)

const (
	maxImageCount = 10
	maxImageBytes = 5 * 1024 * 1024
)

// MediaStore is the external image host: upload yields a stable public URL,
// delete takes the public ID recovered from that URL.
type MediaStore interface {
	Upload(ctx context.Context, publicID, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, publicID string) error
}

type CarService struct {
	carRepo repository.CarRepository
	media   MediaStore
	logger  *logger.Logger
}

func NewCarService(carRepo repository.CarRepository, media MediaStore, l *logger.Logger) *CarService {
	return &CarService{carRepo: carRepo, media: media, logger: l}
}

// ImageUpload carries one multipart file into the service layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type AddCarInput struct {
	Title       string
	Description string
	Tags        string
	Images      []ImageUpload
}

// UpdateCarInput follows the original request semantics: an empty field is
// absent and leaves the stored value untouched; images replace the whole
// list only when at least one new file is supplied.
type UpdateCarInput struct {
	Title       string
	Description string
	Tags        string
	Images      []ImageUpload
}

type SearchResult struct {
	Cars       []car.Car
	Total      int64
	TotalPages int64
	Page       int
}

func (s *CarService) AddCar(ctx context.Context, userID uuid.UUID, in AddCarInput) (car.Car, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return car.Car{}, carhub_errors.ErrInvalidInput
	}
	if len(in.Images) == 0 || len(in.Images) > maxImageCount {
		return car.Car{}, carhub_errors.ErrInvalidInput
	}

	urls, err := s.uploadImages(ctx, in.Images)
	if err != nil {
		return car.Car{}, err
	}

	now := time.Now()
	c := &car.Car{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Tags:        splitTags(in.Tags),
		Images:      urls,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.carRepo.Create(ctx, c); err != nil {
		return car.Car{}, err
	}
	return *c, nil
}

func (s *CarService) GetUserCars(ctx context.Context, userID uuid.UUID) ([]car.Car, error) {
	return s.carRepo.GetByOwner(ctx, userID)
}

func (s *CarService) SearchCars(ctx context.Context, userID uuid.UUID, keyword string, page, limit int) (SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cars, total, err := s.carRepo.Search(ctx, userID, keyword, page, limit)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Cars:       cars,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
		Page:       page,
	}, nil
}

func (s *CarService) GetCarDetails(ctx context.Context, carID, userID uuid.UUID) (car.Car, error) {
	return s.carRepo.GetByID(ctx, carID, userID)
}

func (s *CarService) UpdateCar(ctx context.Context, carID, userID uuid.UUID, in UpdateCarInput) (car.Car, error) {
	c, err := s.carRepo.GetByID(ctx, carID, userID)
	if err != nil {
		return car.Car{}, err
	}

	if len(in.Images) > 0 {
		if len(in.Images) > maxImageCount {
			return car.Car{}, carhub_errors.ErrInvalidInput
		}
		s.deleteImages(ctx, c.Images)
		urls, err := s.uploadImages(ctx, in.Images)
		if err != nil {
			return car.Car{}, err
		}
		c.Images = urls
	}

	if in.Title != "" {
		c.Title = in.Title
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if in.Tags != "" {
		c.Tags = splitTags(in.Tags)
	}
	c.UpdatedAt = time.Now()

	if err := s.carRepo.Update(ctx, c); err != nil {
		return car.Car{}, err
	}
	return c, nil
}

func (s *CarService) DeleteCar(ctx context.Context, carID, userID uuid.UUID) error {
	c, err := s.carRepo.GetByID(ctx, carID, userID)
	if err != nil {
		return err
	}

	s.deleteImages(ctx, c.Images)

	return s.carRepo.Delete(ctx, carID, userID)
}

func (s *CarService) uploadImages(ctx context.Context, images []ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			return nil, carhub_errors.ErrNotUploaded
		}
		if img.Size > maxImageBytes {
			return nil, carhub_errors.ErrTooLarge
		}
		url, err := s.media.Upload(ctx, uuid.New().String(), img.ContentType, img.Body)
		if err != nil {
			return nil, carhub_errors.ErrNotUploaded
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// deleteImages removes stored images at the media host best-effort. A failed
// delete leaves an orphaned object behind but never blocks the operation;
// the listing record stays authoritative.
func (s *CarService) deleteImages(ctx context.Context, urls []string) {
	for _, u := range urls {
		publicID := storage.PublicIDFromURL(u)
		if err := s.media.Delete(ctx, publicID); err != nil && s.logger != nil {
			s.logger.ErrorfCtx(ctx, "failed to delete media object %s: %s", publicID, err)
		}
	}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}
