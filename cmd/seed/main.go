package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/oksasatya/lightbnb-api/config"
	pginfra "github.com/oksasatya/lightbnb-api/internal/infrastructure/postgres"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		AppName:         cfg.AppName + "-seed",
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to open db")
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	email := "owner@lightbnb.test"
	password := "password123"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	var ownerID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "Demo Owner", email, hash).Scan(&ownerID)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user")
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", ownerID, email, password)

	var propertyID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night,
			parking_spaces, number_of_bathrooms, number_of_bedrooms, country, street, city, province, post_code
		)
		VALUES ($1, 'Speed lamp', 'description', 'https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg',
			'https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg', 93061, 6, 4, 8,
			'Canada', '536 Namsub Highway', 'Sotboske', 'Quebec', '28142')
		RETURNING id
	`, ownerID).Scan(&propertyID)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed property")
	}

	var reservationID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO reservations (guest_id, property_id, start_date, end_date)
		VALUES ($1, $2, '2018-09-11', '2018-09-26')
		RETURNING id
	`, ownerID, propertyID).Scan(&reservationID)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed reservation")
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO property_reviews (reservation_id, rating, message)
		VALUES ($1, 4, 'messages')
	`, reservationID); err != nil {
		logger.WithError(err).Fatal("failed to seed review")
	}
	fmt.Printf("seeded property=%d reservation=%d with one review\n", propertyID, reservationID)
}
