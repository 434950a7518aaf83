package clientlog

// Sink receives one fully rendered log block per exchange. What it does
// with the text (console, file, network) is entirely up to the caller.
// A non-nil error propagates out of the observer unmodified; suppressing
// sink failures here could hide user-configuration bugs.
type Sink func(line string) error

// Observer is the per-request callback shape the client's observer hook
// accepts. The client invokes it synchronously after each exchange with
// the fully populated result.
type Observer func(rr *RequestResult) error

// NewObserver binds sink into an Observer that renders each exchange and
// forwards the block to the sink, synchronously, once per exchange. When
// rendering fails the sink is never invoked and the render error is
// returned; when the sink fails its error is returned as-is. There is no
// retry in either case: logging is single-shot and never affects the
// underlying request.
func NewObserver(sink Sink) Observer {
	return func(rr *RequestResult) error {
		line, err := Render(rr)
		if err != nil {
			return err
		}
		return sink(line)
	}
}

// Tee fans each exchange out to several observers in registration order.
// The first failure stops the chain and is returned.
func Tee(observers ...Observer) Observer {
	return func(rr *RequestResult) error {
		for _, obs := range observers {
			if err := obs(rr); err != nil {
				return err
			}
		}
		return nil
	}
}
