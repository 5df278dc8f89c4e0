package dto

import (
	"time"

	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

// RegisterRequest cuerpo de POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token emitido tras registro o login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario sin el hash de contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FromUser mapea la entidad a la respuesta HTTP.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// ActivityResponse registro del feed de actividad reciente.
type ActivityResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	RelatedID    string    `json:"related_id"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromActivity mapea la entidad a la respuesta HTTP.
func FromActivity(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID: a.ID, UserID: a.UserID, ActivityType: a.ActivityType,
		RelatedID: a.RelatedID, Description: a.Description, CreatedAt: a.CreatedAt,
	}
}
