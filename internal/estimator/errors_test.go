package estimator

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMatchesKindSentinel(t *testing.T) {
	cases := []struct {
		kind Kind
		want error
	}{
		{KindValidation, ErrValidation},
		{KindHTTP, ErrHTTPStatus},
		{KindMissingData, ErrMissingData},
		{KindTransport, ErrTransport},
		{KindUnknown, ErrUnknown},
	}

	for _, tc := range cases {
		err := error(&Error{Kind: tc.kind})
		if !errors.Is(err, tc.want) {
			t.Fatalf("errors.Is(%s, %v) = false", tc.kind, tc.want)
		}
	}
	if errors.Is(&Error{Kind: KindHTTP}, ErrTransport) {
		t.Fatalf("http error should not match ErrTransport")
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &Error{Kind: KindTransport, Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false")
	}
	if !strings.Contains(err.Error(), "refused") {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	err := &Error{Kind: KindValidation, Fields: []string{"age", "gender"}}
	if got := err.Error(); got != "incomplete form: age, gender" {
		t.Fatalf("Error() = %q", got)
	}
	if got := err.Message(English); got != "please complete all fields" {
		t.Fatalf("Message() = %q", got)
	}
}

func TestMessagesPerLanguage(t *testing.T) {
	err := &Error{Kind: KindHTTP, Status: 503}
	if got := err.Message(English); got != "error occurred: HTTP error! status: 503" {
		t.Fatalf("Message(en) = %q", got)
	}
	if got := err.Message(Thai); got != "เกิดข้อผิดพลาด: HTTP error! status: 503" {
		t.Fatalf("Message(th) = %q", got)
	}
	if got := (&Error{Kind: KindMissingData}).Message(Language("fr")); got != "salary not received from the API" {
		t.Fatalf("unknown language should fall back to English, got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"":      English,
		"en":    English,
		"TH":    Thai,
		" thai": Thai,
		"de":    English,
	}
	for in, want := range cases {
		if got := ParseLanguage(in); got != want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAsError(t *testing.T) {
	if AsError(nil) != nil {
		t.Fatalf("AsError(nil) should be nil")
	}
	foreign := AsError(errors.New("boom"))
	if foreign.Kind != KindUnknown {
		t.Fatalf("Kind = %s, want unknown", foreign.Kind)
	}
	if got := foreign.Message(English); got != "error occurred: boom" {
		t.Fatalf("Message() = %q", got)
	}
}
