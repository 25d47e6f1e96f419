package client

import (
	"context"
	"regexp"
	"sync"
	"time"

	"bvetra/models"
)

// State is the form's submission state. There is no terminal failure
// state: a failed submit returns to editing with the error attached so the
// user can correct and retry.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

// ErrRequiredFields is the message shown when the local guard rejects a
// submit. No network call is made in that case.
const ErrRequiredFields = "Please fill required fields"

// Permissive phone shape; the backend does its own validation anyway.
var phonePattern = regexp.MustCompile(`^\+?[0-9\-\s()]{6,}$`)

// DefaultCloseDelay is how long the success indicator stays up before the
// form auto-closes.
const DefaultCloseDelay = 1500 * time.Millisecond

// Form tracks one booking form session. Closing it, for any reason, resets
// every field; reopening always starts clean.
type Form struct {
	mu sync.Mutex

	api        Submitter
	onClose    func()
	closeDelay time.Duration

	state      State
	fields     models.BookingRequest
	consent    bool
	errMsg     string
	closeTimer *time.Timer
}

func NewForm(api Submitter, onClose func()) *Form {
	return &Form{
		api:        api,
		onClose:    onClose,
		closeDelay: DefaultCloseDelay,
		state:      StateEditing,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *Form) Fields() models.BookingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the entered field values.
func (f *Form) SetFields(fields models.BookingRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// SetConsent records the data-processing consent checkbox.
func (f *Form) SetConsent(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.consent = ok
}

func (f *Form) valid() bool {
	if f.fields.MissingRequired() || !f.consent {
		return false
	}
	return phonePattern.MatchString(f.fields.Phone)
}

// Submit runs the local guard and, when it passes, performs the single
// network call. On success the form auto-closes after the close delay; on
// failure it returns to editing with the error attached and the entered
// data intact. Submitting while already in flight is a no-op.
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return
	}
	if !f.valid() {
		f.errMsg = ErrRequiredFields
		f.state = StateEditing
		f.mu.Unlock()
		return
	}
	f.state = StateSubmitting
	f.errMsg = ""
	req := f.fields
	f.mu.Unlock()

	err := f.api.Submit(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSubmitting {
		// The form was closed while the request was in flight.
		return
	}
	if err != nil {
		f.state = StateEditing
		f.errMsg = err.Error()
		return
	}
	f.state = StateSucceeded
	f.closeTimer = time.AfterFunc(f.closeDelay, f.Close)
}

// Close dismisses the form and resets it to its initial empty state.
func (f *Form) Close() {
	f.mu.Lock()
	if f.closeTimer != nil {
		f.closeTimer.Stop()
		f.closeTimer = nil
	}
	f.fields = models.BookingRequest{}
	f.consent = false
	f.errMsg = ""
	f.state = StateEditing
	onClose := f.onClose
	f.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}
