package commands

import (
	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"
)

var ErrInsufficientRole = errs.Forbidden(errs.New("insufficient role for this action"))

func requireRole(actor shared.Actor, min user.Role) error {
	if !actor.Can(min) {
		return ErrInsufficientRole
	}
	return nil
}
