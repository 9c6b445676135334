package repository

import (
	"context"

	"carhub/internal/domain/car"
	"carhub/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

// CarRepository is the persistence surface for car listings. Every read and
// write is scoped to the owning user; a listing is invisible to everyone else.
type CarRepository interface {
	Create(ctx context.Context, c *car.Car) error
	GetByOwner(ctx context.Context, userID uuid.UUID) ([]car.Car, error)
	Search(ctx context.Context, userID uuid.UUID, keyword string, page, limit int) ([]car.Car, int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (car.Car, error)
	Update(ctx context.Context, c car.Car) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
