package repo_test

import (
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/arisa-app/castdir/internal/domain"
	"github.com/arisa-app/castdir/testutil"
)

// newTestTx returns a transaction that is rolled back when the test finishes.
// Requires TEST_DATABASE_URL; the test is skipped otherwise.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

func ptr[T any](v T) *T { return &v }

// castFixture returns a valid domain.Cast; callers override fields as needed.
func castFixture(snsLink string) domain.Cast {
	return domain.Cast{
		Name:        "美咲",
		SNSLink:     snsLink,
		StoreLink:   ptr("https://example-store1.com"),
		Area:        "SHIBUYA",
		ServiceType: domain.ServiceTypeKyaba,
		BudgetRange: domain.BudgetFrom20KTo30K,
	}
}
