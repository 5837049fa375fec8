package postgres

import (
	"context"
	"time"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

type UserRepository struct {
	db      Querier
	timeout time.Duration
}

func NewUserRepository(db Querier, timeout time.Duration) *UserRepository {
	return &UserRepository{db: db, timeout: timeout}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Name, u.Email, u.Password)

	return classify("create user", row.Scan(&u.ID))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password
		FROM users
		WHERE id = $1
	`, id)
	return scanUser("get user by id", row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`, email)
	return scanUser("get user by email", row)
}

func scanUser(op string, row scanner) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, classify(op, err)
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
