package car

import (
	"time"

	"github.com/google/uuid"
)

// Car represents the cars table. Tags and Images are stored as text[]
// columns; image entries are the public URLs returned by the media store,
// in upload order.
type Car struct {
	ID          uuid.UUID
	Title       string
	Description string
	Tags        []string
	Images      []string
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
