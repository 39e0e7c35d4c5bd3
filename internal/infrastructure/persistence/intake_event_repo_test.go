package persistence_test

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"investintake/internal/domain/entity"
	"investintake/internal/infrastructure/persistence"
	"investintake/pkg/dbtest"
)

func newTestRepository(t *testing.T) *persistence.IntakeEventRepository {
	t.Helper()

	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = db.Exec("DROP TABLE IF EXISTS intake_events")
		_ = db.Close()
	})

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/001_intake_events.sql"))

	return persistence.NewIntakeEventRepository(db)
}

func TestAppendAndListByEmail(t *testing.T) {
	rq := require.New(t)

	repo := newTestRepository(t)
	ctx := context.Background()

	events := []entity.IntakeEvent{
		{
			Kind:   entity.IntakeEventSearched,
			Email:  "jane@example.com",
			Amount: decimal.Zero,
		},
		{
			Kind:       entity.IntakeEventCreated,
			Email:      "jane@example.com",
			InvestorID: 7,
			Amount:     decimal.RequireFromString("1000.45"),
			UTMSource:  "newsletter",
		},
		{
			Kind:   entity.IntakeEventSearched,
			Email:  "other@example.com",
			Amount: decimal.Zero,
		},
	}

	for _, event := range events {
		rq.NoError(repo.Append(ctx, event))
	}

	listed, err := repo.ListByEmail(ctx, "jane@example.com", 10)
	rq.NoError(err)
	rq.Len(listed, 2)

	// Newest first.
	rq.Equal(entity.IntakeEventCreated, listed[0].Kind)
	rq.Equal(int64(7), listed[0].InvestorID)
	rq.True(listed[0].Amount.Equal(decimal.RequireFromString("1000.45")))
	rq.Equal("newsletter", listed[0].UTMSource)
	rq.NotEmpty(listed[0].ID)
	rq.False(listed[0].CreatedAt.IsZero())

	listed, err = repo.ListByEmail(ctx, "jane@example.com", 1)
	rq.NoError(err)
	rq.Len(listed, 1)
}
