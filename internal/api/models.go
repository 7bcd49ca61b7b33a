package api

import (
	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/domain"
)

// Session requests/responses

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Username          string `json:"username"           validate:"required,max=30"`
	Email             string `json:"email"              validate:"required,email"`
	Password          string `json:"password"           validate:"required,min=8,max=72"`
	ConfirmedPassword string `json:"confirmed_password" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the login endpoint. Remember
// stretches the refresh cookie lifetime to 30 days.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	AccountID uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}

// LoginResponse is the body of a successful login. It keys the access
// token as accessToken, unlike registration's token. The refresh token
// travels only in the HttpOnly cookie, never here.
type LoginResponse struct {
	AccountID   uuid.UUID `json:"user_id"`
	AccessToken string    `json:"accessToken"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
}

// RefreshResponse carries the access token minted from a refresh cookie.
type RefreshResponse struct {
	Access string `json:"access"`
}

// GuestLoginResponse returns both tokens in the body: the guest flow
// needs the refresh token client-side to be able to tear the session down.
type GuestLoginResponse struct {
	RefreshToken string    `json:"refreshToken"`
	AccessToken  string    `json:"accessToken"`
	GuestID      uuid.UUID `json:"guest_id"`
}

// GuestLogoutRequest defines the payload for the guest logout endpoint.
type GuestLogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Board user requests

// CreateUserRequest defines the payload for creating a board contact.
type CreateUserRequest struct {
	Username      string `json:"username"      validate:"required,max=30"`
	Email         string `json:"email"         validate:"required,email,max=30"`
	ContactNumber string `json:"contactNumber"`
	Color         string `json:"color"`
}

// UpdateUserRequest is a partial board contact update; nil means leave
// the field unchanged.
type UpdateUserRequest struct {
	Username      *string `json:"username"      validate:"omitempty,max=30"`
	Email         *string `json:"email"         validate:"omitempty,email,max=30"`
	ContactNumber *string `json:"contactNumber"`
	Color         *string `json:"color"`
}

// Task requests

// SubtaskPayload is one embedded subtask entry in a task write.
type SubtaskPayload struct {
	Text      string `json:"text" validate:"required"`
	Completed bool   `json:"completed"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title           string           `json:"title"            validate:"required"`
	Description     string           `json:"description"`
	DueDate         domain.Date      `json:"due_date"`
	Status          string           `json:"status"`
	CategoryID      uuid.UUID        `json:"category"         validate:"required"`
	PrioID          uuid.UUID        `json:"prio"             validate:"required"`
	AssignedUserIDs []uuid.UUID      `json:"assigned_user_id"`
	Subtasks        []SubtaskPayload `json:"subtasks"         validate:"dive"`
}

// UpdateTaskRequest is a partial task update. Absent assigned_user_id
// leaves assignments untouched; an absent subtasks field keeps the
// current subtask list while a present one replaces it entirely.
type UpdateTaskRequest struct {
	Title           *string           `json:"title"`
	Description     *string           `json:"description"`
	DueDate         *domain.Date      `json:"due_date"`
	Status          *string           `json:"status"`
	CategoryID      *uuid.UUID        `json:"category"`
	PrioID          *uuid.UUID        `json:"prio"`
	AssignedUserIDs *[]uuid.UUID      `json:"assigned_user_id"`
	Subtasks        *[]SubtaskPayload `json:"subtasks" validate:"omitempty,dive"`
}

// CreateSubtaskRequest defines the payload for the task-scoped subtask
// creation endpoint. The owning task comes from the URL, not the body.
type CreateSubtaskRequest struct {
	Text      string `json:"text" validate:"required"`
	Completed bool   `json:"completed"`
}

// UpdateSubtaskRequest is a partial subtask update. A "task" field in the
// body is accepted but ignored: the link always stays with the task in
// the URL.
type UpdateSubtaskRequest struct {
	Text      *string    `json:"text"`
	Completed *bool      `json:"completed"`
	TaskID    *uuid.UUID `json:"task"`
}

// Reference data requests

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required,max=15"`
	Color string `json:"color" validate:"required"`
}

// CreatePrioRequest defines the payload for creating a priority.
type CreatePrioRequest struct {
	Level    string `json:"level" validate:"required"`
	IconPath string `json:"icon_path"`
}

// Profile requests

// CreateProfileRequest defines the payload for creating a profile.
type CreateProfileRequest struct {
	AccountID uuid.UUID `json:"user" validate:"required"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
}

// UpdateProfileRequest is a partial profile update.
type UpdateProfileRequest struct {
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}
