package repository

import (
	"context"
	"errors"

	"carhub/internal/domain/car"
	carhub_errors "carhub/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCarRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) CarRepository {
	return &PostgresCarRepository{db: db}
}

const carColumns = `id, title, description, tags, images, user_id, created_at, updated_at`

func scanCar(row pgx.Row) (car.Car, error) {
	var c car.Car
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Tags, &c.Images, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PostgresCarRepository) Create(ctx context.Context, c *car.Car) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cars (`+carColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Title, c.Description, c.Tags, c.Images, c.UserID, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *PostgresCarRepository) GetByOwner(ctx context.Context, userID uuid.UUID) ([]car.Car, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+carColumns+` FROM cars
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCars(rows)
}

// Search matches the keyword case-insensitively against title, description,
// or any tag. An empty keyword matches everything the caller owns.
func (r *PostgresCarRepository) Search(ctx context.Context, userID uuid.UUID, keyword string, page, limit int) ([]car.Car, int64, error) {
	pattern := "%" + keyword + "%"
	filter := `
		WHERE user_id = $1
		  AND (title ILIKE $2 OR description ILIKE $2
		       OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $2))`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cars`+filter, userID, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := r.db.Query(ctx, `
		SELECT `+carColumns+` FROM cars`+filter+`
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4`, userID, pattern, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cars, err := collectCars(rows)
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *PostgresCarRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (car.Car, error) {
	c, err := scanCar(r.db.QueryRow(ctx, `
		SELECT `+carColumns+` FROM cars
		WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return car.Car{}, carhub_errors.ErrNotFound
		}
		return car.Car{}, err
	}
	return c, nil
}

func (r *PostgresCarRepository) Update(ctx context.Context, c car.Car) error {
	res, err := r.db.Exec(ctx, `
		UPDATE cars
		SET title = $1, description = $2, tags = $3, images = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7`,
		c.Title, c.Description, c.Tags, c.Images, c.UpdatedAt, c.ID, c.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return carhub_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresCarRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return carhub_errors.ErrNotFound
	}
	return nil
}

func collectCars(rows pgx.Rows) ([]car.Car, error) {
	var cars []car.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
