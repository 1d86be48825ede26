package response

import (
	"time"

	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	UserID       uuid.UUID `json:"userId"`
	HotelID      string    `json:"hotelId"`
	Role         string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken:  r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
		UserID:       r.UserID,
		HotelID:      r.HotelID,
		Role:         r.Role.String(),
	}
}

type MeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	HotelID   string     `json:"hotelId"`
	HotelName string     `json:"hotelName"`
	Role      string     `json:"role"`
}

func FromCurrentUser(v *queries.CurrentUserView) *MeResponse {
	return &MeResponse{
		ID:        v.ID,
		Email:     v.Email,
		IsActive:  v.IsActive,
		LastLogin: v.LastLogin,
		HotelID:   v.HotelID,
		HotelName: v.HotelName,
		Role:      v.Role,
	}
}
