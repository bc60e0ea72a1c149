package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/service"
)

// now is the fixed "current time" for every lifecycle test.
var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTripService(trips *mockTripRepo, participants *mockParticipantRepo, mailer service.Mailer) *service.TripService {
	return service.NewTripService(trips, participants, mailer, domain.FixedClock{At: now}, discardLogger())
}

func validNewTrip() domain.NewTrip {
	return domain.NewTrip{
		Destination:    "Florianópolis",
		StartsAt:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Owner:          domain.Owner{Name: "Ana", Email: "ana@example.com"},
		EmailsToInvite: []string{"bia@example.com", "caio@example.com"},
	}
}

func storedTrip() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

// echoCreate persists whatever it receives, assigning IDs like the real repo.
func echoCreate(captured *[]domain.Participant) func(context.Context, domain.Trip, []domain.Participant) (domain.Trip, []domain.Participant, error) {
	return func(_ context.Context, t domain.Trip, ps []domain.Participant) (domain.Trip, []domain.Participant, error) {
		t.ID = uuid.New()
		out := make([]domain.Participant, len(ps))
		for i, p := range ps {
			p.ID = uuid.New()
			p.TripID = t.ID
			out[i] = p
		}
		if captured != nil {
			*captured = out
		}
		return t, out, nil
	}
}

// ---- Create ----------------------------------------------------------------

func TestTripService_Create_PersistsOwnerAndInvitees(t *testing.T) {
	var participants []domain.Participant
	mailer := &recordingMailer{}
	svc := newTripService(&mockTripRepo{createWithParticipants: echoCreate(&participants)}, nil, mailer)

	got, err := svc.Create(context.Background(), validNewTrip())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.IsConfirmed)

	require.Len(t, participants, 3)
	owner := participants[0]
	assert.True(t, owner.IsOwner)
	assert.True(t, owner.IsConfirmed)
	assert.Equal(t, "ana@example.com", owner.Email)
	require.NotNil(t, owner.Name)
	assert.Equal(t, "Ana", *owner.Name)
	for _, p := range participants[1:] {
		assert.False(t, p.IsOwner)
		assert.False(t, p.IsConfirmed)
		assert.Nil(t, p.Name)
	}

	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, owner.ID, mailer.confirmations[0].ID)
	assert.Empty(t, mailer.invitations, "invitees are only emailed after confirmation")
}

func TestTripService_Create_TrimsDestination(t *testing.T) {
	svc := newTripService(&mockTripRepo{createWithParticipants: echoCreate(nil)}, nil, &recordingMailer{})

	in := validNewTrip()
	in.Destination = "  Rome  "

	got, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Destination)
}

func TestTripService_Create_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.NewTrip)
		want   error
	}{
		{"short destination", func(in *domain.NewTrip) { in.Destination = "Rio" }, domain.ErrValidation},
		{"whitespace destination", func(in *domain.NewTrip) { in.Destination = "      " }, domain.ErrValidation},
		{"start in the past", func(in *domain.NewTrip) { in.StartsAt = now.Add(-time.Second) }, domain.ErrStartInPast},
		{"end before start", func(in *domain.NewTrip) { in.EndsAt = in.StartsAt.Add(-time.Hour) }, domain.ErrEndBeforeStart},
		{"end equals start", func(in *domain.NewTrip) { in.EndsAt = in.StartsAt }, domain.ErrEndBeforeStart},
		{"bad owner email", func(in *domain.NewTrip) { in.Owner.Email = "ana" }, domain.ErrValidation},
		{"bad invitee email", func(in *domain.NewTrip) { in.EmailsToInvite = []string{"ok@example.com", "nope"} }, domain.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &recordingMailer{}
			// createWithParticipants is unset: reaching the repo would panic.
			svc := newTripService(&mockTripRepo{}, nil, mailer)

			in := validNewTrip()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, mailer.confirmations)
		})
	}
}

func TestTripService_Create_StartAtNowIsAllowed(t *testing.T) {
	svc := newTripService(&mockTripRepo{createWithParticipants: echoCreate(nil)}, nil, &recordingMailer{})

	in := validNewTrip()
	in.StartsAt = now

	_, err := svc.Create(context.Background(), in)

	assert.NoError(t, err)
}

func TestTripService_Create_RepoError(t *testing.T) {
	boom := errors.New("db down")
	mailer := &recordingMailer{}
	svc := newTripService(&mockTripRepo{
		createWithParticipants: func(context.Context, domain.Trip, []domain.Participant) (domain.Trip, []domain.Participant, error) {
			return domain.Trip{}, nil, boom
		},
	}, nil, mailer)

	_, err := svc.Create(context.Background(), validNewTrip())

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mailer.confirmations)
}

// ---- GetByID ---------------------------------------------------------------

func TestTripService_GetByID_NotFound(t *testing.T) {
	svc := newTripService(&mockTripRepo{getByID: tripNotFound}, nil, &recordingMailer{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Update ----------------------------------------------------------------

func TestTripService_Update_Valid(t *testing.T) {
	trip := storedTrip()
	trip.IsConfirmed = true
	var saved domain.Trip
	svc := newTripService(&mockTripRepo{
		getByID: returnsTrip(trip),
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			saved = tr
			return tr, nil
		},
	}, nil, &recordingMailer{})

	changes := domain.TripChanges{
		Destination: "Porto Alegre",
		StartsAt:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	}
	got, err := svc.Update(context.Background(), trip.ID, changes)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, saved.ID)
	assert.Equal(t, "Porto Alegre", got.Destination)
	assert.Equal(t, changes.StartsAt, got.StartsAt)
	assert.Equal(t, changes.EndsAt, got.EndsAt)
	assert.True(t, got.IsConfirmed, "update never touches confirmation")
}

func TestTripService_Update_PastStartOnConfirmedTripIsRejected(t *testing.T) {
	trip := storedTrip()
	trip.IsConfirmed = true
	// update is unset: nothing may be written.
	svc := newTripService(&mockTripRepo{getByID: returnsTrip(trip)}, nil, &recordingMailer{})

	_, err := svc.Update(context.Background(), trip.ID, domain.TripChanges{
		Destination: trip.Destination,
		StartsAt:    now.Add(-24 * time.Hour),
		EndsAt:      trip.EndsAt,
	})

	assert.ErrorIs(t, err, domain.ErrStartInPast)
}

func TestTripService_Update_NotFoundBeforeValidation(t *testing.T) {
	svc := newTripService(&mockTripRepo{getByID: tripNotFound}, nil, &recordingMailer{})

	_, err := svc.Update(context.Background(), uuid.New(), domain.TripChanges{Destination: "x"})

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

// ---- Confirm ---------------------------------------------------------------

func TestTripService_Confirm_InvitesNonOwners(t *testing.T) {
	trip := storedTrip()
	owner := domain.Participant{ID: uuid.New(), TripID: trip.ID, Email: "ana@example.com", IsOwner: true, IsConfirmed: true}
	bia := domain.Participant{ID: uuid.New(), TripID: trip.ID, Email: "bia@example.com"}
	caio := domain.Participant{ID: uuid.New(), TripID: trip.ID, Email: "caio@example.com"}

	mailer := &recordingMailer{}
	svc := newTripService(
		&mockTripRepo{
			getByID:       returnsTrip(trip),
			markConfirmed: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		},
		&mockParticipantRepo{
			listByTripID: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
				return []domain.Participant{owner, bia, caio}, nil
			},
		},
		mailer,
	)

	outcome, err := svc.Confirm(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.Confirmed, outcome)
	require.Len(t, mailer.invitations, 1)
	assert.ElementsMatch(t, []domain.Participant{bia, caio}, mailer.invitations[0])
}

func TestTripService_Confirm_TwiceSendsOnce(t *testing.T) {
	trip := storedTrip()
	confirmed := false
	mailer := &recordingMailer{}
	svc := newTripService(
		&mockTripRepo{
			getByID: func(context.Context, uuid.UUID) (domain.Trip, error) {
				current := trip
				current.IsConfirmed = confirmed
				return current, nil
			},
			markConfirmed: func(context.Context, uuid.UUID) (bool, error) {
				changed := !confirmed
				confirmed = true
				return changed, nil
			},
		},
		&mockParticipantRepo{
			listByTripID: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
				return []domain.Participant{{ID: uuid.New(), Email: "bia@example.com"}}, nil
			},
		},
		mailer,
	)

	first, err := svc.Confirm(context.Background(), trip.ID)
	require.NoError(t, err)
	second, err := svc.Confirm(context.Background(), trip.ID)
	require.NoError(t, err)

	assert.Equal(t, service.Confirmed, first)
	assert.Equal(t, service.AlreadyConfirmed, second)
	assert.True(t, confirmed)
	assert.Len(t, mailer.invitations, 1)
}

func TestTripService_Confirm_LostRaceSendsNothing(t *testing.T) {
	trip := storedTrip()
	mailer := &recordingMailer{}
	svc := newTripService(&mockTripRepo{
		getByID:       returnsTrip(trip),
		markConfirmed: func(context.Context, uuid.UUID) (bool, error) { return false, nil },
	}, nil, mailer)

	outcome, err := svc.Confirm(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.AlreadyConfirmed, outcome)
	assert.Empty(t, mailer.invitations)
}

func TestTripService_Confirm_NotFound(t *testing.T) {
	svc := newTripService(&mockTripRepo{getByID: tripNotFound}, nil, &recordingMailer{})

	_, err := svc.Confirm(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestTripService_Confirm_ParticipantListFailureStillConfirms(t *testing.T) {
	trip := storedTrip()
	mailer := &recordingMailer{}
	svc := newTripService(
		&mockTripRepo{
			getByID:       returnsTrip(trip),
			markConfirmed: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		},
		&mockParticipantRepo{
			listByTripID: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
				return nil, errors.New("db down")
			},
		},
		mailer,
	)

	outcome, err := svc.Confirm(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Equal(t, service.Confirmed, outcome)
	assert.Empty(t, mailer.invitations)
}
