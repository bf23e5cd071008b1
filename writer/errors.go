package writer

// Error represents a writer contract error. Sink failures are not wrapped
// in it; they propagate to the caller unchanged.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}
