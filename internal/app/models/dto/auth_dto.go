package dto

import "github.com/yigit/campusadmin/internal/app/models"

// LoginRequest represents login credentials sent to the backend
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse is the backend's answer to a successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
