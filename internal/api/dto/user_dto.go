package dto

import "time"

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url"`
	Password string `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest is a partial profile update.
type UserUpdateRequest struct {
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	VerificationRequest *bool   `json:"verification_request"`
	VerifyStatus        *string `json:"verify_status"`
}

// SellerVerificationRequest carries an admin decision on a seller.
type SellerVerificationRequest struct {
	VerifyStatus string `json:"verify_status"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of a user record.
type UserResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PhotoURL            string    `json:"photo_url,omitempty"`
	Role                string    `json:"role"`
	Phone               string    `json:"phone,omitempty"`
	Address             string    `json:"address,omitempty"`
	VerificationRequest bool      `json:"verification_request"`
	VerifyStatus        string    `json:"verify_status"`
	CreatedAt           time.Time `json:"created_at"`
}

// AdminStatusResponse answers whether a user holds the admin role.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
