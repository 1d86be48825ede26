package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount        = errors.New("payment amount must be greater than zero")
	ErrAmountExceedsBalance = errors.New("payment amount exceeds outstanding balance")
	ErrInvalidMethod        = errors.New("invalid payment method")
)

type Method string

const (
	MethodCash       Method = "cash"
	MethodCreditCard Method = "credit_card"
	MethodDebitCard  Method = "debit_card"
	MethodTransfer   Method = "transfer"
	MethodOther      Method = "other"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodDebitCard, MethodTransfer, MethodOther:
		return true
	default:
		return false
	}
}

// Payment is an immutable ledger entry against a reservation.
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AmountCents   int64
	Method        Method
	CreatedAt     time.Time
}

func NewPayment(reservationID uuid.UUID, amountCents int64, method Method, now time.Time) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		method = MethodCash
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Payment{
		ID:            uuid.New(),
		ReservationID: reservationID,
		AmountCents:   amountCents,
		Method:        method,
		CreatedAt:     now,
	}, nil
}
