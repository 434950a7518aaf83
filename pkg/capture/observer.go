package capture

import "github.com/faunalog/faunalog/pkg/clientlog"

// NewObserver adapts a Recorder into a clientlog.Observer that renders
// each exchange and stores the result. Render failures propagate and
// nothing is recorded for that exchange.
func NewObserver(store Recorder) clientlog.Observer {
	return func(rr *clientlog.RequestResult) error {
		rendered, err := clientlog.Render(rr)
		if err != nil {
			return err
		}
		store.Record(&Entry{
			Method:     rr.Method,
			Path:       rr.Path,
			StatusCode: rr.StatusCode,
			DurationMs: rr.TimeTaken.Milliseconds(),
			Rendered:   rendered,
		})
		return nil
	}
}
