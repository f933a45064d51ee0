package types

// Request bodies for the JSON API. Pointer fields distinguish "absent" from
// "empty" on partial updates.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpsertProfileRequest struct {
	UserID          string   `json:"userId" validate:"required,uuid4"`
	Name            *string  `json:"name"`
	Bio             *string  `json:"bio"`
	Specialization  *string  `json:"specialization"`
	Location        *string  `json:"location"`
	PricePerSession *float64 `json:"pricePerSession" validate:"omitempty,gte=0"`
	AvatarURL       *string  `json:"avatarUrl"`
}

type SendMessageRequest struct {
	FromID  string `json:"fromId" validate:"required,uuid4"`
	ToID    string `json:"toId" validate:"required,uuid4"`
	Content string `json:"content" validate:"required"`
}

type BookAppointmentRequest struct {
	PatientID      string `json:"patientId" validate:"required,uuid4"`
	ProfessionalID string `json:"professionalId" validate:"required,uuid4"`
	ScheduledAt    string `json:"scheduledAt" validate:"required"`
}
