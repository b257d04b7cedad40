package chunk

import "fmt"

// Status is the lifecycle state of a Job.
//
//	Idle -> Running -> Completed | Cancelled | Failed
type Status int32

const (
	Idle Status = iota
	Running
	Completed
	Cancelled
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

// Terminal reports whether s is Completed, Cancelled or Failed.
func (s Status) Terminal() bool {
	return s == Completed || s == Cancelled || s == Failed
}

// Observer receives job notifications on the job goroutine. Progress is
// called with strictly increasing percentages; Done is called exactly once,
// after the last Progress.
type Observer interface {
	Progress(percent int)
	Done(status Status, err error)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnProgress func(percent int)
	OnDone     func(status Status, err error)
}

// Progress calls OnProgress.
func (o ObserverFuncs) Progress(percent int) {
	if o.OnProgress != nil {
		o.OnProgress(percent)
	}
}

// Done calls OnDone.
func (o ObserverFuncs) Done(status Status, err error) {
	if o.OnDone != nil {
		o.OnDone(status, err)
	}
}

type nopObserver struct{}

func (nopObserver) Progress(int)       {}
func (nopObserver) Done(Status, error) {}
