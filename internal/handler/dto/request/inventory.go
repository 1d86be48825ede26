package request

import (
	"frontdesk/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type RoomRequest struct {
	Number      string `json:"number" binding:"required,max=20"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	PriceCents  int64  `json:"priceCents" binding:"gte=0"`
	Description string `json:"description" binding:"max=500"`
}

func (r RoomRequest) ToInput() (commands.RoomInput, error) {
	var in commands.RoomInput
	err := copier.Copy(&in, &r)
	return in, err
}

type ClientRequest struct {
	FirstName    string `json:"firstName" binding:"required,max=100"`
	LastName     string `json:"lastName" binding:"required,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=40"`
	DocumentType string `json:"documentType"`
	DocumentID   string `json:"documentId" binding:"max=40"`
	Address      string `json:"address" binding:"max=200"`
	Notes        string `json:"notes" binding:"max=1000"`
}

func (r ClientRequest) ToInput() (commands.ClientInput, error) {
	var in commands.ClientInput
	err := copier.Copy(&in, &r)
	return in, err
}
