package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
	"github.com/yourusername/peerlearn-api/pkg/auth"
)

// AuthService обрабатывает регистрацию и вход пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register создает нового пользователя и возвращает его вместе с access-токеном.
// Email должен быть уникален; пароль хешируется хуком BeforeSave.
func (s *AuthService) Register(name, email, password string) (*entity.User, string, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: user with email %s already exists", apperrors.ErrConflict, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("[AuthService.Register] Зарегистрирован пользователь ID=%d", user.ID)
	return user, token, nil
}

// Login проверяет пароль и возвращает пользователя с access-токеном.
// Для несуществующего email и неверного пароля возвращается одна и та же
// ошибка, чтобы не раскрывать, какие адреса зарегистрированы.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, "", err
	}

	if !user.CheckPassword(password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetProfile возвращает профиль пользователя с сертификациями и документами
func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.GetWithTeacherData(userID)
}
