package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email,max=254" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"s3cretpass"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type AuthResponseDTO struct {
	Message string  `json:"message" example:"Login successful"`
	Token   string  `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    UserDTO `json:"user"`
}
