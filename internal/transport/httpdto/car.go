package httpdto

import (
	"time"

	"carhub/internal/domain/car"
)

// CarDTO is the public projection of a car listing
type CarDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewCarDTO(c car.Car) CarDTO {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	images := c.Images
	if images == nil {
		images = []string{}
	}
	return CarDTO{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Tags:        tags,
		Images:      images,
		UserID:      c.UserID.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCarDTOs(cars []car.Car) []CarDTO {
	dtos := make([]CarDTO, 0, len(cars))
	for _, c := range cars {
		dtos = append(dtos, NewCarDTO(c))
	}
	return dtos
}

// CarResponse is returned by add, get and update operations
type CarResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Car     CarDTO `json:"car"`
}

// CarListResponse is returned by GET /api/cars
type CarListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Cars    []CarDTO `json:"cars"`
}

// CarSearchResponse is returned by GET /api/cars/search
type CarSearchResponse struct {
	Success     bool     `json:"success"`
	Count       int      `json:"count"`
	Total       int64    `json:"total"`
	TotalPages  int64    `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	Cars        []CarDTO `json:"cars"`
}

// CarDeleteResponse is returned by DELETE /api/cars/:carId
type CarDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
