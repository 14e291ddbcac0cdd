package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"HealthFeas/pkg/config"
	xhttp "HealthFeas/pkg/http"
	applogger "HealthFeas/pkg/logger"
)

func TestRunStopsOnContextAndClosesResources(t *testing.T) {
	cfg := config.Default()
	l := applogger.Nop()
	srv := xhttp.NewServer(l, nil, xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))

	var closed []string
	app := New(cfg, l, srv,
		Resource{Name: "first", Closer: CloserFunc(func() error { closed = append(closed, "first"); return nil })},
		Resource{Name: "second", Closer: CloserFunc(func() error { closed = append(closed, "second"); return errors.New("boom") })},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	if err == nil || err.Error() != "close second: boom" {
		t.Fatalf("expected close error to surface, got %v", err)
	}
	if len(closed) != 2 || closed[0] != "first" || closed[1] != "second" {
		t.Fatalf("resources closed out of order: %v", closed)
	}
}
