// Package auth registro y login de usuarios. La entrega de OTP por correo
// queda fuera: el token JWT se emite directamente.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
	"github.com/tu-usuario/inventrack-api/pkg/token"
)

// JWTConfig parámetros para emitir tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea el usuario con contraseña bcrypt y devuelve usuario + token.
// domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(_ context.Context, username, email, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" || email == "" || len(password) < 8 {
		return nil, "", domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(u); err != nil {
		return nil, "", err
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, u.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Login verifica credenciales y devuelve usuario + token.
// domain.ErrUnauthorized si el email no existe o la contraseña no coincide.
func (uc *AuthUseCase) Login(_ context.Context, email, password string) (*entity.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidInput
	}
	u, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, u.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}
