//go:build staging

package staging

import (
	"net/http"
	"strings"
	"testing"
)

// TestSmoke walks the public surface of a deployed instance.
func TestSmoke(t *testing.T) {
	t.Run("Root", func(t *testing.T) {
		resp, body := makeRequest(t, "/")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, body)
		}
		if !strings.Contains(body, "ChatQuest") {
			t.Errorf("Expected landing line, got: %s", body)
		}
	})

	t.Run("Health", func(t *testing.T) {
		resp, _ := makeRequest(t, "/healthz")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}

		resp, _ = makeRequest(t, "/readyz")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, body := makeRequest(t, "/metrics")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(body, "chatquest_") {
			t.Error("Expected chatquest metrics in scrape output")
		}
	})
}

// TestCommandEndpoints exercises the chat-facing command surface with a
// throwaway identity.
func TestCommandEndpoints(t *testing.T) {
	const identity = "?user=smoketester&channel=smoketest"

	t.Run("QuestAndStats", func(t *testing.T) {
		resp, body := makeRequest(t, "/api/quest"+identity)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, body)
		}
		if !strings.Contains(body, "smoketester") {
			t.Errorf("Expected reply to name the player, got: %s", body)
		}

		resp, body = makeRequest(t, "/api/stats"+identity)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, body)
		}
		if !strings.Contains(body, "Site LVL") {
			t.Errorf("Expected stats line, got: %s", body)
		}
	})

	t.Run("MissingParams", func(t *testing.T) {
		resp, body := makeRequest(t, "/api/quest")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected chat-safe 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(body, "missing user or channel") {
			t.Errorf("Expected validation line, got: %s", body)
		}
	})

	t.Run("Top", func(t *testing.T) {
		resp, body := makeRequest(t, "/api/top?channel=smoketest")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, body)
		}
		if !strings.Contains(body, "top players") && !strings.Contains(body, "No ChatQuest data") {
			t.Errorf("Expected leaderboard or empty line, got: %s", body)
		}
	})
}
