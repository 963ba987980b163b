package notify

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/pubsub/pstest"
)

func TestGCPPubSubNotifierPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	defer os.Unsetenv("PUBSUB_EMULATOR_HOST")
	os.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()

	n, err := newGCPPubSubNotifier(ctx, NotifierConfig{
		ID:   "gtopic",
		Type: TypeGCPPubSub,
		GCP: &GCPNotifierConfig{
			ProjectID: "test-project",
			Topic:     "topic-1",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newGCPPubSubNotifier: %v", err)
	}

	pub := n.(*gcpPubSubNotifier)
	if _, err := pub.client.CreateTopic(ctx, "topic-1"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	err = n.Publish(ctx, Event{
		JobID:     "classic-tee-front",
		ProductID: 71,
		TaskKey:   "z1k9",
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msgs := server.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message on the emulator, got %d", len(msgs))
	}
	if got := msgs[0].Attributes["job_id"]; got != "classic-tee-front" {
		t.Fatalf("job_id attribute = %q", got)
	}
}
