package request

import "frontdesk/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	HotelID  string `json:"hotelId"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password, HotelID: r.HotelID}
}

// RefreshRequest may be empty when the refresh cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
