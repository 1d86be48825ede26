package request

import (
	"frontdesk/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type SignupRequest struct {
	HotelName string `json:"hotelName" binding:"required,max=120"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

func (r SignupRequest) ToInput() (commands.SignupInput, error) {
	var in commands.SignupInput
	err := copier.Copy(&in, &r)
	return in, err
}

type AddMemberRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required,oneof=viewer operator admin"`
}

func (r AddMemberRequest) ToInput() (commands.AddMemberInput, error) {
	var in commands.AddMemberInput
	err := copier.Copy(&in, &r)
	return in, err
}
