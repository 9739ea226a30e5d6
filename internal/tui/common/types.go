package common

// Phase is where a capture dialog is in its lifetime.
type Phase int

const (
	Capturing Phase = iota
	Captured
	Cancelled
	Failed
)

func (p Phase) String() string {
	switch p {
	case Capturing:
		return "capturing"
	case Captured:
		return "captured"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Title() string
	Phase() Phase
	Held() []string
	Result() string
	Err() error
	ShowHelp() bool
	StatusLine() string
}
