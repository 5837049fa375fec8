package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	repo "github.com/oksasatya/lightbnb-api/internal/domain/repository"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
	"github.com/oksasatya/lightbnb-api/pkg/mailer"
	mailtpl "github.com/oksasatya/lightbnb-api/pkg/mailer/templates"
)

type UserService struct {
	Repo       repo.UserRepository
	BcryptCost int
	Mail       EmailPublisher // nil disables the welcome email
	AppName    string
	Logger     *logrus.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(r repo.UserRepository, bcryptCost int, mail EmailPublisher, appName string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, BcryptCost: bcryptCost, Mail: mail, AppName: appName, Logger: logger}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup hashes the password and stores the new user.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", apperr.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    normalizeEmail(in.Email),
		Password: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.sendWelcome(ctx, u)
	return u, nil
}

func (s *UserService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.WelcomeData{Name: u.Name, Email: u.Email, AppName: s.AppName}.ToMap(),
	}
	if err := s.Mail.PublishEmail(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish welcome email failed")
	}
}

// Login returns the user whose stored hash matches password.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		helpers.CompareHashAndPassword(s.dummy(), password)
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return u, nil
}

// dummy returns a hash at the configured cost so a miss costs the same as a hit.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = helpers.HashPassword("lightbnb-dummy-password", s.BcryptCost)
	})
	return s.dummyHash
}

func (s *UserService) CurrentUser(ctx context.Context, id int64) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}
