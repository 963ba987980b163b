package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// gcpPubSubNotifier implements the Notifier interface for GCP Pub/Sub.
type gcpPubSubNotifier struct {
	id     string
	typ    string
	client *pubsub.Client
	topic  *pubsub.Topic
	log    Logger
}

// newGCPPubSubNotifier creates a new Pub/Sub notifier with the given configuration.
func newGCPPubSubNotifier(ctx context.Context, cfg NotifierConfig, log Logger) (Notifier, error) {
	if cfg.GCP == nil {
		return nil, fmt.Errorf("notifier %q missing gcp configuration", cfg.ID)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var opts []option.ClientOption
	if cfg.GCP.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCP.CredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, cfg.GCP.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &gcpPubSubNotifier{
		id:     cfg.ID,
		typ:    TypeGCPPubSub,
		client: client,
		topic:  client.Topic(cfg.GCP.Topic),
		log:    ensureLogger(log),
	}, nil
}

func (g *gcpPubSubNotifier) ID() string   { return g.id }
func (g *gcpPubSubNotifier) Type() string { return g.typ }

// Publish sends the event to the configured Pub/Sub topic.
func (g *gcpPubSubNotifier) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := g.topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"job_id": evt.JobID,
		},
	})

	if _, err := result.Get(ctx); err != nil {
		g.log.ErrorObj("pubsub notifier publish failed", "notifier_pubsub_error", map[string]any{
			"notifier_id": g.id,
			"error":       err.Error(),
		})
		return fmt.Errorf("publish to pubsub: %w", err)
	}
	g.log.DebugObj("pubsub notifier delivered event", "notifier_pubsub_delivery", map[string]any{
		"notifier_id": g.id,
	})
	return nil
}
