package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
	"github.com/pkordes/planner/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Florianópolis",
		StartsAt:    time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func ownerFixture() domain.Participant {
	return domain.NewOwnerParticipant(domain.Owner{Name: "Diego", Email: "diego@example.com"})
}

// createTrip persists tripFixture with an owner and returns it.
func createTrip(t *testing.T, tx pgx.Tx) domain.Trip {
	t.Helper()
	trip, _, err := repo.NewTripRepo(tx).CreateWithParticipants(context.Background(), tripFixture(), []domain.Participant{ownerFixture()})
	require.NoError(t, err)
	return trip
}

var missingID = [16]byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
	0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}
