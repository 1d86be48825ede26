package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// RoomAvailability is the conflict check the booking flow runs per room.
type RoomAvailability interface {
	IsRoomFree(ctx context.Context, hotelID string, roomID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

// ChangePublisher pushes committed reservation changes to live subscribers.
type ChangePublisher interface {
	PublishReservationChanged(ctx context.Context, event shared.ReservationChanged) error
}

type ReservationRecorder interface {
	ReservationCreated(channel string)
}

// Outbox topics. Each becomes a queue on the broker.
const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationUpdated   = "reservation.updated"
	TopicReservationCancelled = "reservation.cancelled"
	TopicPaymentRecorded      = "payment.recorded"
	TopicPreCheckInCompleted  = "precheckin.completed"

	outboxKindEvent = "event"
)

type outboxEvent struct {
	HotelID       string    `json:"hotelId"`
	ReservationID uuid.UUID `json:"reservationId"`
	At            time.Time `json:"at"`
	Data          any       `json:"data,omitempty"`
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, event outboxEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode outbox event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), outboxKindEvent, topic, body, event.At)
}

// changeNotifier publishes after commit. A failed publish is logged only;
// the write already happened.
type changeNotifier struct {
	publisher ChangePublisher
}

func (n changeNotifier) notify(ctx context.Context, hotelID string, reservationID uuid.UUID, kind shared.ChangeKind, at time.Time) {
	if n.publisher == nil {
		return
	}
	event := shared.ReservationChanged{HotelID: hotelID, ReservationID: reservationID, Kind: kind, At: at}
	if err := n.publisher.PublishReservationChanged(ctx, event); err != nil {
		slog.Warn("failed to publish reservation change",
			"hotel_id", hotelID,
			"reservation_id", reservationID,
			"kind", kind,
			"error", err.Error())
	}
}
