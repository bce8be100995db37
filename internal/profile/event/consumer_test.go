package event

import (
	"context"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"

	"github.com/Team-DAS/profile-cell/internal/profile/models"
)

type fakeShellCreator struct {
	calls []models.AccountVerifiedEvent
	err   error
}

func (f *fakeShellCreator) CreateShell(_ context.Context, ev *models.AccountVerifiedEvent) (*models.Profile, error) {
	f.calls = append(f.calls, *ev)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{UserID: ev.AccountID}, nil
}

func newTestConsumer(t *testing.T, shells ShellCreator) *EventConsumer {
	t.Helper()
	consumer, err := NewEventConsumer("", shells)
	if err != nil {
		t.Fatalf("NewEventConsumer failed: %v", err)
	}
	return consumer
}

func TestProcessAccountVerified(t *testing.T) {
	shells := &fakeShellCreator{}
	consumer := newTestConsumer(t, shells)

	err := consumer.processMessage(amqp091.Delivery{
		RoutingKey: "account.verified",
		Body:       []byte(`{"accountId":"acc-1","fullName":"Jane Doe","email":"jane@example.com"}`),
	})
	if err != nil {
		t.Fatalf("processMessage failed: %v", err)
	}

	if len(shells.calls) != 1 {
		t.Fatalf("expected one CreateShell call, got %d", len(shells.calls))
	}
	if shells.calls[0].AccountID != "acc-1" || shells.calls[0].Email != "jane@example.com" {
		t.Errorf("unexpected event payload: %+v", shells.calls[0])
	}
}

func TestProcessMalformedPayloadIsDropped(t *testing.T) {
	shells := &fakeShellCreator{}
	consumer := newTestConsumer(t, shells)

	// Malformed JSON must be acked and dropped, not requeued forever.
	err := consumer.processMessage(amqp091.Delivery{
		RoutingKey: "account.verified",
		Body:       []byte(`{not json`),
	})
	if err != nil {
		t.Errorf("malformed payload must not produce an error, got %v", err)
	}
	if len(shells.calls) != 0 {
		t.Error("malformed payload must not reach CreateShell")
	}
}

func TestProcessUnknownRoutingKeyIsDropped(t *testing.T) {
	shells := &fakeShellCreator{}
	consumer := newTestConsumer(t, shells)

	err := consumer.processMessage(amqp091.Delivery{
		RoutingKey: "account.deleted",
		Body:       []byte(`{}`),
	})
	if err != nil {
		t.Errorf("unknown routing key must not produce an error, got %v", err)
	}
	if len(shells.calls) != 0 {
		t.Error("unknown routing key must not reach CreateShell")
	}
}

func TestProcessFailureIsPropagated(t *testing.T) {
	shells := &fakeShellCreator{err: errors.New("store unavailable")}
	consumer := newTestConsumer(t, shells)

	// Processing failures bubble up so the delivery gets nacked and
	// requeued.
	err := consumer.processMessage(amqp091.Delivery{
		RoutingKey: "account.verified",
		Body:       []byte(`{"accountId":"acc-1"}`),
	})
	if err == nil {
		t.Error("expected an error when CreateShell fails")
	}
}
