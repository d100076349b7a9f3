package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rescue/internal/delivery/worker/handler"
	"rescue/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type recordedAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (r *recordedAck) Ack(uint64, bool) error {
	r.acked = true

	return nil
}

func (r *recordedAck) Nack(_ uint64, _ bool, requeue bool) error {
	r.nacked = true
	r.requeue = requeue

	return nil
}

func (r *recordedAck) Reject(_ uint64, requeue bool) error {
	return r.Nack(0, false, requeue)
}

type stubPushHandler struct {
	err       error
	event     *service.PushEvent
	requestID string
}

func (s *stubPushHandler) Process(_ context.Context, event *service.PushEvent, requestID string) error {
	s.event = event
	s.requestID = requestID

	return s.err
}

var errRetryable = handler.Retryable(errors.New("fcm unavailable"))

func TestRabbitMQConsumer_Handle(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		redelivered bool
		handlerErr  error
		wantAck     bool
		wantRequeue bool
	}{
		{name: "delivered", body: `{"event_id":"evt-1","title":"t"}`, wantAck: true},
		{name: "invalid event dropped", body: `{"event_id":"evt-1"}`, handlerErr: errors.New("validation failed"), wantAck: true},
		{name: "transient failure requeued", body: `{"event_id":"evt-1"}`, handlerErr: errRetryable, wantRequeue: true},
		{name: "second failure dead-lettered", body: `{"event_id":"evt-1"}`, redelivered: true, handlerErr: errRetryable},
		{name: "malformed body dropped", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPushHandler{err: tt.handlerErr}
			c := &rabbitMQConsumer{
				handler: stub,
				logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
				ctx:     context.Background(),
			}

			ack := &recordedAck{}
			c.handle(amqp.Delivery{
				Acknowledger: ack,
				Body:         []byte(tt.body),
				Redelivered:  tt.redelivered,
				Headers:      amqp.Table{"request_id": "req-7"},
			})

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, !tt.wantAck, ack.nacked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
			if tt.body != "not json" {
				assert.Equal(t, "req-7", stub.requestID)
				assert.Equal(t, "evt-1", stub.event.EventID)
			}
		})
	}
}
