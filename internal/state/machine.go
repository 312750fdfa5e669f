package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/exhibit/internal/exhibit"
)

// TickInterval is how often the loading message rotates.
const TickInterval = 2500 * time.Millisecond

var (
	ErrInvalidInput      = errors.New("state: input has blank fields")
	ErrBusy              = errors.New("state: a placard is already being generated")
	ErrInvalidTransition = errors.New("state: transition not allowed")
)

// Kind identifies which view is showing.
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindResult
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is one of Idle, Loading, Result or Failed.
type State interface {
	Kind() Kind
	isState()
}

// Idle shows the empty form.
type Idle struct{}

// Loading waits on generation attempt Attempt. Ticks counts rotations of
// the loading message since the attempt started.
type Loading struct {
	Attempt uint64
	Input   exhibit.UserInput
	Ticks   int
}

// Result holds a generated placard.
type Result struct {
	Input exhibit.UserInput
	Data  exhibit.Data
}

// Failed shows Message above the form.
type Failed struct {
	Message string
}

func (Idle) Kind() Kind    { return KindIdle }
func (Loading) Kind() Kind { return KindLoading }
func (Result) Kind() Kind  { return KindResult }
func (Failed) Kind() Kind  { return KindError }

func (Idle) isState()    {}
func (Loading) isState() {}
func (Result) isState()  {}
func (Failed) isState()  {}

// Machine owns the current view state. The attempt counter only grows, so a
// completion or tick carrying an old attempt number is recognised and
// dropped.
type Machine struct {
	mu       sync.RWMutex
	state    State
	attempt  uint64
	messages []string
}

// NewMachine returns a Machine in Idle that rotates through messages while
// loading. An empty list falls back to exhibit.LoadingMessages.
func NewMachine(messages []string) *Machine {
	if len(messages) == 0 {
		messages = exhibit.LoadingMessages
	}
	return &Machine{
		state:    Idle{},
		messages: append([]string(nil), messages...),
	}
}

// State returns the current state by value.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current()
}

// Kind reports the current state's kind.
func (m *Machine) Kind() Kind {
	return m.State().Kind()
}

// Submit moves Idle or Failed into Loading for a new attempt.
func (m *Machine) Submit(in exhibit.UserInput) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.current().(type) {
	case Loading:
		return 0, ErrBusy
	case Result:
		return 0, fmt.Errorf("%w: submit from result", ErrInvalidTransition)
	}
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m.attempt++
	m.state = Loading{Attempt: m.attempt, Input: in}
	return m.attempt, nil
}

// Succeed stores data if attempt is the one currently loading.
func (m *Machine) Succeed(attempt uint64, data exhibit.Data) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	loading, ok := m.loading(attempt)
	if !ok {
		return false
	}
	m.state = Result{Input: loading.Input, Data: data}
	return true
}

// Fail records message if attempt is the one currently loading.
func (m *Machine) Fail(attempt uint64, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.loading(attempt); !ok {
		return false
	}
	if strings.TrimSpace(message) == "" {
		message = exhibit.UnexpectedMessage
	}
	m.state = Failed{Message: message}
	return true
}

// Reset discards a Result and returns to Idle.
func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.current().(Result); !ok {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, m.current().Kind())
	}
	m.state = Idle{}
	return nil
}

// Tick advances the loading message for attempt. It returns false once the
// attempt is no longer loading, which is the caller's cue to stop ticking.
func (m *Machine) Tick(attempt uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	loading, ok := m.loading(attempt)
	if !ok {
		return false
	}
	loading.Ticks++
	m.state = loading
	return true
}

// LoadingMessage is the message for the current tick, or "" when not loading.
func (m *Machine) LoadingMessage() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loading, ok := m.current().(Loading)
	if !ok || len(m.messages) == 0 {
		return ""
	}
	return m.messages[loading.Ticks%len(m.messages)]
}

// Attempt returns the attempt currently loading, or 0.
func (m *Machine) Attempt() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if loading, ok := m.current().(Loading); ok {
		return loading.Attempt
	}
	return 0
}

// FormVisible reports whether the input form accepts a submission.
func (m *Machine) FormVisible() bool {
	switch m.Kind() {
	case KindIdle, KindError:
		return true
	default:
		return false
	}
}

// CanExport reports whether a placard is available to export.
func (m *Machine) CanExport() bool {
	return m.Kind() == KindResult
}

func (m *Machine) current() State {
	if m.state == nil {
		return Idle{}
	}
	return m.state
}

func (m *Machine) loading(attempt uint64) (Loading, bool) {
	loading, ok := m.current().(Loading)
	if !ok || loading.Attempt != attempt {
		return Loading{}, false
	}
	return loading, true
}
