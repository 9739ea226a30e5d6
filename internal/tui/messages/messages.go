package messages

// CaptureDoneMsg carries the terminal result of a capture session.
type CaptureDoneMsg struct {
	Chord string
	Err   error
}

// HeldKeysMsg is a fresh sample of the keys currently held.
type HeldKeysMsg struct {
	Keys []string
}
