package dto

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type CreatedResponse struct {
	InsertedID string `json:"insertedId"`
	Message    string `json:"message"`
}
