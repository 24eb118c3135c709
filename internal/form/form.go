// Package form holds the salary estimate form: four optional numeric inputs,
// their validation, and the state of the single submission in flight.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/rs/zerolog"
)

// ErrSuperseded is returned by a Submit whose attempt was replaced by a
// newer one before it finished. Such an attempt never writes state.
var ErrSuperseded = errors.New("submission superseded by a newer attempt")

// Estimator performs the remote estimate. *estimator.Client satisfies it.
type Estimator interface {
	Estimate(ctx context.Context, input models.EstimateRequest) (models.EstimateResult, error)
}

type entry struct {
	raw     string
	value   int
	set     bool
	invalid bool
}

type Form struct {
	estimator Estimator
	logger    zerolog.Logger

	mu         sync.Mutex
	entries    [fieldCount]entry
	state      State
	generation uint64
	cancel     context.CancelFunc
	listeners  []func(State)
}

func New(est Estimator, logger zerolog.Logger) *Form {
	return &Form{
		estimator: est,
		logger:    logger.With().Str("component", "form").Logger(),
		state:     Idle{},
	}
}

// UpdateField stores the raw user input for field. Blank input clears the
// field; input that does not parse is kept as invalid and rejected by Submit.
func (f *Form) UpdateField(field Field, raw string) {
	if field < 0 || field >= fieldCount {
		return
	}
	value, ok := parseValue(field, raw)

	f.mu.Lock()
	defer f.mu.Unlock()

	e := entry{raw: raw}
	switch {
	case strings.TrimSpace(raw) == "":
	case ok:
		e.value = value
		e.set = true
	default:
		e.invalid = true
	}
	f.entries[field] = e
}

// Value returns the parsed value of field and whether it is set.
func (f *Form) Value(field Field) (int, bool) {
	if field < 0 || field >= fieldCount {
		return 0, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.entries[field]
	return e.value, e.set
}

// Invalid reports whether the last input for field failed to parse.
func (f *Form) Invalid(field Field) bool {
	if field < 0 || field >= fieldCount {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[field].invalid
}

// Pending lists the fields that are unset or invalid.
func (f *Form) Pending() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingLocked()
}

// OutOfRange lists the free-entry fields whose value falls outside the
// advisory ranges.
func (f *Form) OutOfRange() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Field
	if e := f.entries[FieldAge]; e.set && (e.value < MinAge || e.value > MaxAge) {
		out = append(out, FieldAge)
	}
	if e := f.entries[FieldExperience]; e.set && (e.value < MinExperience || e.value > MaxExperience) {
		out = append(out, FieldExperience)
	}
	return out
}

// Request returns the wire request for the current values and whether all
// fields are set.
func (f *Form) Request() (models.EstimateRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pendingLocked()) > 0 {
		return models.EstimateRequest{}, false
	}
	return f.requestLocked(), true
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// CanSubmit is false while a request is loading or either selector is unset.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if IsLoading(f.state) {
		return false
	}
	return f.entries[FieldGender].set && f.entries[FieldEducation].set
}

// Subscribe registers fn to be called with every new state.
func (f *Form) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Submit validates the form and, when complete, issues exactly one estimate
// request. Any attempt still in flight is cancelled first. The returned state
// is the one this attempt left the form in; a superseded attempt returns
// (nil, ErrSuperseded).
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.generation++
	gen := f.generation

	pending := f.pendingLocked()
	if len(pending) > 0 {
		f.mu.Unlock()
		names := make([]string, 0, len(pending))
		for _, field := range pending {
			names = append(names, field.String())
		}
		err := &estimator.Error{Kind: estimator.KindValidation, Fields: names}
		f.logger.Debug().Strs("fields", names).Msg("form incomplete")
		state := Failed{Err: err}
		if !f.replace(gen, state) {
			return nil, ErrSuperseded
		}
		return state, err
	}

	input := f.requestLocked()
	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()
	defer f.release(gen, cancel)

	if !f.replace(gen, Loading{Generation: gen}) {
		return nil, ErrSuperseded
	}
	return f.run(reqCtx, gen, input)
}

func (f *Form) run(ctx context.Context, gen uint64, input models.EstimateRequest) (state State, err error) {
	defer func() {
		if r := recover(); r != nil {
			estErr := &estimator.Error{Kind: estimator.KindUnknown, Err: fmt.Errorf("panic: %v", r)}
			state, err = Failed{Err: estErr}, estErr
		}
		if !f.replace(gen, state) {
			state, err = nil, ErrSuperseded
		}
	}()

	result, callErr := f.estimator.Estimate(ctx, input)
	if callErr != nil {
		estErr := estimator.AsError(callErr)
		f.logger.Debug().Err(callErr).Str("kind", estErr.Kind.String()).Msg("estimate failed")
		return Failed{Err: estErr}, estErr
	}

	f.logger.Debug().Float64("salary", result.Salary).Str("currency", result.Currency).Msg("estimate received")
	return Succeeded{Result: result}, nil
}

// replace swaps in s if gen is still the current attempt.
func (f *Form) replace(gen uint64, s State) bool {
	f.mu.Lock()
	if gen != f.generation {
		f.mu.Unlock()
		return false
	}
	f.state = s
	listeners := append([]func(State){}, f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
	return true
}

func (f *Form) release(gen uint64, cancel context.CancelFunc) {
	cancel()
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen == f.generation {
		f.cancel = nil
	}
}

func (f *Form) pendingLocked() []Field {
	var out []Field
	for _, field := range Fields() {
		if !f.entries[field].set {
			out = append(out, field)
		}
	}
	return out
}

func (f *Form) requestLocked() models.EstimateRequest {
	return models.EstimateRequest{
		Age:               f.entries[FieldAge].value,
		Gender:            f.entries[FieldGender].value,
		EducationLevel:    f.entries[FieldEducation].value,
		YearsOfExperience: f.entries[FieldExperience].value,
	}
}
