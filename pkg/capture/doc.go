// Package capture stores rendered client exchanges for later inspection.
//
// Where package clientlog forwards each exchange to a sink and forgets it,
// capture keeps a bounded in-memory history so a debugging session can ask
// "what did the last N queries look like" after the fact.
//
// Entry is the stored form of one exchange: the rendered log block plus
// the fields worth filtering on. Store is the storage interface;
// MemoryStore is the bundled ring-buffer implementation with FIFO
// eviction and optional real-time subscriptions.
//
// NewObserver adapts a Store into a clientlog.Observer, so capturing
// composes with any other observer through clientlog.Tee:
//
//	store := capture.NewMemoryStore(1000)
//	obs := clientlog.Tee(
//	    clientlog.NewObserver(clientlog.WriterSink(os.Stderr)),
//	    capture.NewObserver(store),
//	)
package capture
