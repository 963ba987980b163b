package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSNotifierPublishSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	n := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::topic",
		client:   client,
		log:      noopLogger{},
	}

	err := n.Publish(context.Background(), Event{
		JobID:     "classic-tee-front",
		ProductID: 71,
	})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["job_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "classic-tee-front" {
		t.Fatalf("job_id attribute missing or wrong: %#v", attr)
	}
	if client.input.Message == nil || !strings.Contains(aws.ToString(client.input.Message), `"product_id":71`) {
		t.Fatalf("Message missing product_id: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSNotifierPublishError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("boom")}
	n := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::topic",
		client:   client,
		log:      noopLogger{},
	}

	if err := n.Publish(context.Background(), Event{JobID: "j1"}); err == nil {
		t.Fatalf("expected error from Publish")
	}
}
