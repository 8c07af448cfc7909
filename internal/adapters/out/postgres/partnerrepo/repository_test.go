package partnerrepo_test

import (
	"context"
	"testing"

	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPartnerRepository_LocksRowsItReadsForUpdate(t *testing.T) {
	t.Run("should lock the row read by Get", func(t *testing.T) {
		recorder, err := pgtest.NewStatementRecorder()
		require.NoError(t, err)
		repository := partnerrepo.NewGormPartnerRepository(recorder.DB, new(MockAggregateTracker))

		_, _ = repository.Get(context.Background(), kernel.NewUUID())

		statements := recorder.Statements()
		require.Len(t, statements, 1)
		assert.Contains(t, statements[0], `FROM "partners"`)
		assert.Contains(t, statements[0], "FOR UPDATE")
	})

	t.Run("should lock the rows read by GetAllAvailable", func(t *testing.T) {
		recorder, err := pgtest.NewStatementRecorder()
		require.NoError(t, err)
		repository := partnerrepo.NewGormPartnerRepository(recorder.DB, new(MockAggregateTracker))

		_, _ = repository.GetAllAvailable(context.Background())

		statements := recorder.Statements()
		require.Len(t, statements, 1)
		assert.Contains(t, statements[0], "FOR UPDATE")
	})
}
