package dto

import "cinelog/internal/http-api/models"

type RegisterDTO struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Age      int    `json:"age" binding:"required,min=12,max=100"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Age      int    `json:"age"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UserUpdateDTO struct {
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Age      *int    `json:"age" binding:"omitempty,min=12,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

type RoleUpdateDTO struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

func FromModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Age:      u.Age,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
