// Package estimatortest provides a scripted transport for exercising the
// estimator client without a running service.
package estimatortest

import (
	"io"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"syscall"

	fhttp "github.com/bogdanfinn/fhttp"
)

// Response is one scripted reply. When Err is set it is returned instead of
// a response.
type Response struct {
	Status int
	Body   string
	Err    error
}

// Request is a copy of what the client sent.
type Request struct {
	Method string
	URL    string
	Header fhttp.Header
	Body   []byte
}

// Doer replays Responses in order; the last one repeats once exhausted.
// Hook runs before each reply and may block; a non-nil return is used as
// the transport error.
type Doer struct {
	Responses []Response
	Hook      func(req *fhttp.Request) error

	mu       sync.Mutex
	requests []Request
}

func New(responses ...Response) *Doer {
	return &Doer{Responses: responses}
}

func (d *Doer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	recorded := Request{Method: req.Method, URL: req.URL.String(), Header: req.Header.Clone()}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		recorded.Body = body
	}

	d.mu.Lock()
	index := len(d.requests)
	d.requests = append(d.requests, recorded)
	var scripted Response
	if len(d.Responses) > 0 {
		if index >= len(d.Responses) {
			index = len(d.Responses) - 1
		}
		scripted = d.Responses[index]
	}
	hook := d.Hook
	d.mu.Unlock()

	if hook != nil {
		if err := hook(req); err != nil {
			return nil, err
		}
	}
	if scripted.Err != nil {
		return nil, scripted.Err
	}

	status := scripted.Status
	if status == 0 {
		status = fhttp.StatusOK
	}
	return &fhttp.Response{
		StatusCode: status,
		Header:     fhttp.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(scripted.Body)),
		Request:    req,
	}, nil
}

// Requests returns every request received so far.
func (d *Doer) Requests() []Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Request, len(d.requests))
	copy(out, d.requests)
	return out
}

func (d *Doer) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

// JSON scripts a reply with the given status and body.
func JSON(status int, body string) Response {
	return Response{Status: status, Body: body}
}

// Refused scripts the error a dial to a closed port produces.
func Refused(target string) Response {
	return Response{Err: &url.Error{
		Op:  "Post",
		URL: target,
		Err: &net.OpError{
			Op:  "dial",
			Net: "tcp",
			Err: os.NewSyscallError("connect", syscall.ECONNREFUSED),
		},
	}}
}
