package notify

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	recipient := uuid.New()
	next := &recordingPublisher{fail: map[uuid.UUID]bool{recipient: true}}
	b := NewBreakerPublisher(next, BreakerSettings{ConsecutiveFailures: 3, OpenTimeout: time.Hour}, testLogger())
	msg := Message{Kind: KindTransferCompleted, RecipientID: recipient}

	for i := 0; i < 3; i++ {
		err := b.Publish(context.Background(), msg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	assert.Equal(t, gobreaker.StateOpen, b.State())

	err := b.Publish(context.Background(), msg)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, next.calls, "open circuit must not reach the broker")
}

func TestBreakerPublisher_PassesThroughWhenHealthy(t *testing.T) {
	next := &recordingPublisher{}
	b := NewBreakerPublisher(next, DefaultBreakerSettings, testLogger())

	require.NoError(t, b.Publish(context.Background(), Message{Kind: KindTransferCreated, RecipientID: uuid.New()}))

	assert.Len(t, next.published(), 1)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestLogPublisher_NeverFails(t *testing.T) {
	p := NewLogPublisher(testLogger())
	assert.NoError(t, p.Publish(context.Background(), Message{Kind: KindTransferFailed, RecipientID: uuid.New()}))
}
