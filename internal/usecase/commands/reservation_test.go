//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain/client"
	"frontdesk/internal/domain/reservation"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/domain/user"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/shared"
	"frontdesk/tests/common/builder"
	commandsmock "frontdesk/tests/mock/commands"
	sharedmock "frontdesk/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	jobs         *sharedmock.MockNotificationRepository
	availability *commandsmock.MockRoomAvailability
	publisher    *commandsmock.MockChangePublisher
	recorder     *commandsmock.MockReservationRecorder
	clock        *clock.MockClock
	cmds         commands.ReservationCommands

	actor  shared.Actor
	client *client.Client
	rooms  []*room.Room
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.availability = commandsmock.NewMockRoomAvailability(s.ctrl)
	s.publisher = commandsmock.NewMockChangePublisher(s.ctrl)
	s.recorder = commandsmock.NewMockReservationRecorder(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC))

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()

	s.cmds = commands.NewReservationCommands(s.uow, s.availability, s.publisher, s.recorder, s.clock)

	s.actor = shared.Actor{UserID: uuid.New(), HotelID: "hotel-test", Role: user.RoleOperator}
	c, err := builder.NewClientBuilder().BuildDomain()
	s.Require().NoError(err)
	s.client = c
	s.rooms = []*room.Room{
		builder.NewRoomBuilder().WithNumber("101").WithPrice(10000).MustBuildDomain(),
		builder.NewRoomBuilder().WithNumber("102").WithPrice(12500).MustBuildDomain(),
	}
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func (s *ReservationCommandsTestSuite) expectBooking() {
	s.reads.EXPECT().ClientByID(gomock.Any(), "hotel-test", s.client.ID()).Return(s.client, nil)
	s.reads.EXPECT().RoomsByIDs(gomock.Any(), "hotel-test", s.roomIDs()).Return(s.rooms, nil)
}

func (s *ReservationCommandsTestSuite) roomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.rooms))
	for _, rm := range s.rooms {
		ids = append(ids, rm.ID())
	}
	return ids
}

func (s *ReservationCommandsTestSuite) input() commands.ReservationInput {
	return commands.ReservationInput{
		ClientID:  s.client.ID(),
		Rooms:     s.roomIDs(),
		StartDate: time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:    string(reservation.StatusConfirmed),
		Guests:    2,
	}
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("books free rooms priced as their sum", func() {
		s.SetupTest()
		s.expectBooking()
		for _, rm := range s.rooms {
			s.availability.EXPECT().IsRoomFree(gomock.Any(), "hotel-test", rm.ID(), gomock.Any(), gomock.Any(), nil).Return(true, nil)
		}
		s.expectTx()

		var created *reservation.Reservation
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				created = res
				return nil
			})
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "event", commands.TopicReservationCreated, gomock.Any(), s.clock.Now()).Return(nil)
		s.recorder.EXPECT().ReservationCreated("hotel")
		s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev shared.ReservationChanged) error {
				s.Equal(shared.ChangeCreated, ev.Kind)
				s.Equal("hotel-test", ev.HotelID)
				return nil
			})

		id, err := s.cmds.Create(context.Background(), s.actor, s.input())

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), id)
		s.Equal(int64(22500), created.TotalCents())
		s.Equal(int64(22500), created.BalanceCents())
	})

	s.Run("explicit total overrides room prices", func() {
		s.SetupTest()
		s.expectBooking()
		s.availability.EXPECT().IsRoomFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), nil).Return(true, nil).Times(2)
		s.expectTx()
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				s.Equal(int64(5000), res.TotalCents())
				return nil
			})
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.recorder.EXPECT().ReservationCreated(gomock.Any())
		s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).Return(nil)

		in := s.input()
		total := int64(5000)
		in.TotalCents = &total
		_, err := s.cmds.Create(context.Background(), s.actor, in)
		s.Require().NoError(err)
	})

	s.Run("first taken room aborts the booking", func() {
		s.SetupTest()
		s.expectBooking()
		s.availability.EXPECT().IsRoomFree(gomock.Any(), gomock.Any(), s.rooms[0].ID(), gomock.Any(), gomock.Any(), nil).Return(false, nil)

		_, err := s.cmds.Create(context.Background(), s.actor, s.input())

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrRoomUnavailable))
		s.True(errs.Is(err, errs.ErrConflict))
		s.Contains(err.Error(), "room 101")
	})

	s.Run("a failed check is not read as free", func() {
		s.SetupTest()
		s.expectBooking()
		s.availability.EXPECT().IsRoomFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), nil).
			Return(false, errs.New("connection reset"))

		_, err := s.cmds.Create(context.Background(), s.actor, s.input())

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrAvailabilityUnknown))
		s.False(errs.Is(err, errs.ErrConflict))
	})

	s.Run("unknown room is a validation error", func() {
		s.SetupTest()
		s.reads.EXPECT().ClientByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.client, nil)
		s.reads.EXPECT().RoomsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.rooms[:1], nil)

		_, err := s.cmds.Create(context.Background(), s.actor, s.input())
		s.ErrorIs(err, commands.ErrUnknownRoom)
	})

	s.Run("unknown client is a validation error", func() {
		s.SetupTest()
		s.reads.EXPECT().ClientByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, infra.NotFound("client not found"))

		_, err := s.cmds.Create(context.Background(), s.actor, s.input())
		s.ErrorIs(err, commands.ErrUnknownClient)
	})

	s.Run("inverted stay is rejected before any read", func() {
		s.SetupTest()
		in := s.input()
		in.StartDate, in.EndDate = in.EndDate, in.StartDate

		_, err := s.cmds.Create(context.Background(), s.actor, in)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("viewers cannot book", func() {
		s.SetupTest()
		viewer := s.actor
		viewer.Role = user.RoleViewer

		_, err := s.cmds.Create(context.Background(), viewer, s.input())
		s.ErrorIs(err, commands.ErrInsufficientRole)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdate() {
	s.Run("excludes itself and keeps the current status", func() {
		s.SetupTest()
		current := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ClientID = s.client.ID() }).
			WithRooms(s.roomIDs()...).
			WithStatus(reservation.StatusPaid).
			MustBuildDomain()
		id := current.ID()

		s.reads.EXPECT().ReservationByID(gomock.Any(), "hotel-test", id).Return(current, nil)
		s.expectBooking()
		for _, rm := range s.rooms {
			s.availability.EXPECT().IsRoomFree(gomock.Any(), "hotel-test", rm.ID(), gomock.Any(), gomock.Any(), &id).Return(true, nil)
		}
		s.expectTx()
		s.reads.EXPECT().ReservationForUpdate(gomock.Any(), "hotel-test", id).Return(current, nil)
		s.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), current).Return(nil)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), commands.TopicReservationUpdated, gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).Return(nil)

		in := s.input()
		in.Status = ""
		err := s.cmds.Update(context.Background(), s.actor, id, in)

		s.Require().NoError(err)
		s.Equal(reservation.StatusPaid, current.Status())
		s.Equal(int64(30000), current.TotalCents())
	})

	s.Run("an edit that cancels skips the availability check", func() {
		s.SetupTest()
		current := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ClientID = s.client.ID() }).
			WithRooms(s.roomIDs()...).
			MustBuildDomain()
		id := current.ID()

		s.reads.EXPECT().ReservationByID(gomock.Any(), "hotel-test", id).Return(current, nil)
		s.expectBooking()
		s.availability.EXPECT().IsRoomFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.expectTx()
		s.reads.EXPECT().ReservationForUpdate(gomock.Any(), "hotel-test", id).Return(current, nil)
		s.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), current).Return(nil)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), commands.TopicReservationCancelled, gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).Return(nil)

		in := s.input()
		in.Status = string(reservation.StatusCancelled)
		err := s.cmds.Update(context.Background(), s.actor, id, in)

		s.Require().NoError(err)
		s.True(current.IsCancelled())
	})

	s.Run("cancelled reservations are closed", func() {
		s.SetupTest()
		current := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).MustBuildDomain()
		s.reads.EXPECT().ReservationByID(gomock.Any(), gomock.Any(), current.ID()).Return(current, nil)

		err := s.cmds.Update(context.Background(), s.actor, current.ID(), s.input())
		s.ErrorIs(err, commands.ErrReservationClosed)
	})

	s.Run("missing reservation is not found", func() {
		s.SetupTest()
		id := uuid.New()
		s.reads.EXPECT().ReservationByID(gomock.Any(), gomock.Any(), id).Return(nil, infra.NotFound("reservation not found"))

		err := s.cmds.Update(context.Background(), s.actor, id, s.input())
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	current := builder.NewReservationBuilder().MustBuildDomain()
	s.expectTx()
	s.reads.EXPECT().ReservationForUpdate(gomock.Any(), "hotel-test", current.ID()).Return(current, nil)
	s.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), current).Return(nil)
	s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), commands.TopicReservationCancelled, gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev shared.ReservationChanged) error {
			s.Equal(shared.ChangeCancelled, ev.Kind)
			return errs.New("redis down")
		})

	err := s.cmds.Cancel(context.Background(), s.actor, current.ID())

	s.Require().NoError(err, "a failed publish must not fail the write")
	s.True(current.IsCancelled())
}

func (s *ReservationCommandsTestSuite) TestBulkDelete() {
	admin := s.actor
	admin.Role = user.RoleAdmin
	a, b := uuid.New(), uuid.New()

	s.Run("operators cannot delete", func() {
		s.SetupTest()
		_, err := s.cmds.BulkDelete(context.Background(), s.actor, []uuid.UUID{a})
		s.ErrorIs(err, commands.ErrInsufficientRole)
	})

	s.Run("empty list is rejected", func() {
		s.SetupTest()
		_, err := s.cmds.BulkDelete(context.Background(), admin, []uuid.UUID{uuid.Nil})
		s.ErrorIs(err, commands.ErrNoReservationIDs)
	})

	s.Run("duplicates collapse and every id is deleted", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), "hotel-test", []uuid.UUID{a, b}).Return(int64(2), nil)
		s.publisher.EXPECT().PublishReservationChanged(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		n, err := s.cmds.BulkDelete(context.Background(), admin, []uuid.UUID{a, b, a})
		s.Require().NoError(err)
		s.Equal(int64(2), n)
	})

	s.Run("an unknown id rolls back the batch", func() {
		s.SetupTest()
		s.expectTx()
		s.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), "hotel-test", []uuid.UUID{a, b}).Return(int64(1), nil)

		_, err := s.cmds.BulkDelete(context.Background(), admin, []uuid.UUID{a, b})
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}
