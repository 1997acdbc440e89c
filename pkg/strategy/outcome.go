package strategy

import "sync"

// Kind identifies which outcome a strategy signalled.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindFail
	KindRedirect
	KindPass
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFail:
		return "fail"
	case KindRedirect:
		return "redirect"
	case KindPass:
		return "pass"
	case KindError:
		return "error"
	default:
		return "none"
	}
}

// Outcome is a signalled result together with its arguments.
type Outcome struct {
	Kind      Kind
	User      any
	Info      any
	Challenge any
	Status    int
	URL       string
	Err       error
}

// Recorder is an Actions implementation that keeps the first outcome it
// receives. It is safe for concurrent use, so a pipeline can wait on Done
// while the strategy runs elsewhere. The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	outcome Outcome
	calls   int
	done    chan struct{}
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{done: make(chan struct{})}
}

func (r *Recorder) Success(user any, info any) {
	r.record(Outcome{Kind: KindSuccess, User: user, Info: info})
}

func (r *Recorder) Fail(challenge any, status int) {
	r.record(Outcome{Kind: KindFail, Challenge: challenge, Status: status})
}

func (r *Recorder) Redirect(url string, status int) {
	r.record(Outcome{Kind: KindRedirect, URL: url, Status: status})
}

func (r *Recorder) Pass() {
	r.record(Outcome{Kind: KindPass})
}

func (r *Recorder) Error(err error) {
	r.record(Outcome{Kind: KindError, Err: err})
}

// Outcome returns the first recorded outcome, or one with KindNone.
func (r *Recorder) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// Calls returns how many outcomes were signalled, including ignored ones.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Done is closed once the first outcome is recorded.
func (r *Recorder) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doneLocked()
}

// doneLocked returns the done channel, creating it for a zero Recorder.
// Callers must hold r.mu.
func (r *Recorder) doneLocked() chan struct{} {
	if r.done == nil {
		r.done = make(chan struct{})
	}
	return r.done
}

func (r *Recorder) record(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls > 1 {
		return
	}
	r.outcome = o
	close(r.doneLocked())
}
