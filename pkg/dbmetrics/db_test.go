package dbmetrics

import (
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/daleelashes/booking-service/pkg/metrics"
)

func TestWrapWithDefault(t *testing.T) {
	// sql.Open не устанавливает соединение, поэтому фиктивный DSN безопасен
	db, err := sql.Open("postgres", "postgres://localhost/none?sslmode=disable")
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("booking-service-test")
	stop := make(chan struct{})
	defer close(stop)

	wrapped := WrapWithDefault(db, m, stop)
	require.NotNil(t, wrapped)

	var _ DBExecutor = wrapped
}
