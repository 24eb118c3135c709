package form

import (
	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/models"
)

// State is the request state of the form. Exactly one of Idle, Loading,
// Succeeded or Failed.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

type Loading struct {
	Generation uint64
}

type Succeeded struct {
	Result models.EstimateResult
}

type Failed struct {
	Err *estimator.Error
}

func (Idle) Name() string      { return "idle" }
func (Loading) Name() string   { return "loading" }
func (Succeeded) Name() string { return "succeeded" }
func (Failed) Name() string    { return "failed" }

func (Idle) isState()      {}
func (Loading) isState()   {}
func (Succeeded) isState() {}
func (Failed) isState()    {}

func IsLoading(s State) bool {
	_, ok := s.(Loading)
	return ok
}
