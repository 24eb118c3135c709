package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jimezsa/salarycli/internal/estimator/estimatortest"
)

func TestPingReachable(t *testing.T) {
	env := newTestEnv(t, nil, estimatortest.JSON(200, `{"message": "Hello from salary API"}`))
	env.ctx.JSONOutput = true

	if err := (&PingCmd{Timeout: 5}).Run(env.ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got PingResult
	if err := json.Unmarshal(env.out.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if got.Status != "ok" || got.Message != "Hello from salary API" {
		t.Fatalf("result = %+v", got)
	}
	if got.Endpoint != "http://127.0.0.1:8000/api/hello" {
		t.Fatalf("endpoint = %q", got.Endpoint)
	}
	if reqs := env.doer.Requests(); len(reqs) != 1 || reqs[0].Method != "GET" {
		t.Fatalf("requests = %+v", reqs)
	}
}

func TestPingUnreachable(t *testing.T) {
	env := newTestEnv(t, nil, estimatortest.Refused("http://127.0.0.1:8000/api/hello"))

	err := (&PingCmd{Timeout: 5}).Run(env.ctx)
	if !errors.Is(err, ErrReported) {
		t.Fatalf("Run() error = %v, want ErrReported", err)
	}
	if !strings.Contains(env.err.String(), "cannot connect to the server") {
		t.Fatalf("stderr = %q", env.err.String())
	}
}

func TestPingPlain(t *testing.T) {
	env := newTestEnv(t, nil, estimatortest.JSON(200, `{"message": "hi"}`))
	env.ctx.PlainText = true

	if err := (&PingCmd{}).Run(env.ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	fields := strings.Split(strings.TrimRight(env.out.String(), "\n"), "\t")
	if len(fields) != 5 || fields[1] != "ok" || fields[3] != "hi" {
		t.Fatalf("plain output = %q", env.out.String())
	}
}
