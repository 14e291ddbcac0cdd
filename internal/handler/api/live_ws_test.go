package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"HealthFeas/internal/domain/models"

	"github.com/gorilla/websocket"
)

func dialLive(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestEcho(t))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/scenarios"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg string) models.LiveResponse {
	t.Helper()
	if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp models.LiveResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp
}

func TestLiveRecomputesEveryMessage(t *testing.T) {
	conn := dialLive(t)

	first := roundTrip(t, conn, `{"venture":"cosmetic_studio"}`)
	if first.Error != "" || first.Result == nil || first.Title != "Cosmetic / Laser Studio" {
		t.Fatalf("unexpected response %+v", first)
	}

	second := roundTrip(t, conn, `{"venture":"cosmetic_studio","params":{"avg_price":12000}}`)
	if second.Result == nil || second.Result.Year1.Revenue <= first.Result.Year1.Revenue {
		t.Fatalf("expected higher revenue after price change: %+v vs %+v", second.Result, first.Result)
	}
}

func TestLiveReportsErrorsWithoutClosing(t *testing.T) {
	conn := dialLive(t)

	tests := []struct {
		msg  string
		want string
	}{
		{`not json`, "malformed message"},
		{`{"globals":{}}`, "validation failed"},
		{`{"venture":"dental"}`, "unknown venture"},
		{`{"venture":"diagnostics","params":{"utilization_days":10}}`, "validation failed"},
	}
	for _, tt := range tests {
		resp := roundTrip(t, conn, tt.msg)
		if !strings.Contains(resp.Error, tt.want) || resp.Result != nil {
			t.Fatalf("message %q: got %+v, want error containing %q", tt.msg, resp, tt.want)
		}
	}

	ok := roundTrip(t, conn, `{"venture":"diagnostics"}`)
	if ok.Error != "" || ok.Result == nil {
		t.Fatalf("session should survive errors, got %+v", ok)
	}
}

func TestLiveRateLimitsSession(t *testing.T) {
	conn := dialLive(t)

	limited := false
	for i := 0; i < 8; i++ {
		if resp := roundTrip(t, conn, `{"venture":"diagnostics"}`); resp.Error == "rate limited" {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("expected the session to be throttled after its burst")
	}
}
