package notify

import (
	"context"
	"errors"
	"testing"
)

type stubNotifier struct {
	id    string
	typ   string
	err   error
	calls int
}

func (s *stubNotifier) ID() string   { return s.id }
func (s *stubNotifier) Type() string { return s.typ }
func (s *stubNotifier) Publish(context.Context, Event) error {
	s.calls++
	return s.err
}

func TestFanoutPublishAggregatesErrors(t *testing.T) {
	fanout := NewFanout([]Notifier{
		&stubNotifier{id: "ok", typ: "http"},
		&stubNotifier{id: "bad", typ: "http", err: errors.New("failed")},
	})

	count, err := fanout.Publish(context.Background(), Event{})
	if count != 1 {
		t.Fatalf("expected 1 success, got %d", count)
	}
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
}

func TestFanoutSkipsNilNotifiers(t *testing.T) {
	ok := &stubNotifier{id: "ok", typ: "http"}
	fanout := NewFanout([]Notifier{nil, ok})
	if fanout.Size() != 1 {
		t.Fatalf("Size = %d, want 1", fanout.Size())
	}

	count, err := fanout.Publish(context.Background(), Event{})
	if err != nil || count != 1 {
		t.Fatalf("Publish count=%d err=%v", count, err)
	}
	if ok.calls != 1 {
		t.Fatalf("notifier called %d times", ok.calls)
	}
}

func TestBuildAllWithDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	notifiers, err := BuildAll(context.Background(), reg, []NotifierConfig{
		{ID: "http", Type: TypeHTTP, HTTP: &HTTPNotifierConfig{URL: "https://example.com"}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(notifiers) != 1 {
		t.Fatalf("expected 1 notifier, got %d", len(notifiers))
	}
}

func TestRegistryRejectsUnknownType(t *testing.T) {
	reg := DefaultRegistry()
	if _, err := reg.NotifierFor(context.Background(), NotifierConfig{ID: "k", Type: "kafka"}, nil); err == nil {
		t.Fatalf("expected error for unregistered type")
	}
}
