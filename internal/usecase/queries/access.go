package queries

import (
	"frontdesk/internal/domain/user"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"
)

var ErrAccessDenied = errs.Forbidden(errs.New("hotel access denied"))

func requireMember(actor shared.Actor) error {
	if !actor.Can(user.RoleViewer) {
		return ErrAccessDenied
	}
	return nil
}
