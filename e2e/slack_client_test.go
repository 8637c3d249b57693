//go:build e2e

package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/auth"
	"github.com/shamank/slack-sdk-go/pkg/conversations"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

func TestAuthTest(t *testing.T) {
	token := os.Getenv("SLACK_TOKEN")
	if token == "" {
		t.Skip("SLACK_TOKEN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	resp, err := auth.Test(ctx, requests.NewClient(0, ""), token)
	if err != nil {
		t.Fatalf("auth.Test error: %v", err)
	}
	if resp.Team == "" {
		t.Fatal("empty team name")
	}
	t.Logf("authenticated as %s in %s", resp.User, resp.Team)
}

func TestConversationsList(t *testing.T) {
	token := os.Getenv("SLACK_TOKEN")
	if token == "" {
		t.Skip("SLACK_TOKEN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	resp, err := conversations.List(ctx, requests.NewClient(0, ""), token, &conversations.ListRequest{
		ExcludeArchived: api.Bool(true),
		Limit:           api.Uint32(5),
	})
	if err != nil {
		t.Fatalf("conversations.List error: %v", err)
	}
	for _, ch := range resp.Channels {
		if ch.ID == "" {
			t.Fatal("channel with empty id")
		}
	}
}
