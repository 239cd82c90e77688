package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTimedReturnsResult(t *testing.T) {
	logger := zap.NewNop()

	err := Timed(logger, "test_ok", func() error {
		time.Sleep(time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	wantErr := errors.New("boom")
	err = Timed(logger, "test_err", func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestTimedObservesHistogram(t *testing.T) {
	before := testutil.CollectAndCount(OperationDuration)

	require.NoError(t, Timed(nil, "test_observe", func() error { return nil }))

	after := testutil.CollectAndCount(OperationDuration)
	assert.Greater(t, after, before)
}
