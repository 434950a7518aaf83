package capture

// Recorder is the minimal interface for recording captured exchanges.
// Observers only need this; query surfaces need the full Store.
type Recorder interface {
	Record(entry *Entry)
}

// Store defines the interface for exchange history storage. Store embeds
// Recorder, so any Store implementation can be used where a Recorder is
// expected.
type Store interface {
	Recorder

	// Get retrieves an entry by ID, or nil when unknown.
	Get(id string) *Entry

	// List returns entries newest first, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all entries.
	Clear()

	// Count returns the number of stored entries.
	Count() int
}

// Filter defines criteria for narrowing List results.
type Filter struct {
	// Method filters by HTTP method, case-insensitively.
	Method string

	// PathPrefix filters by path prefix.
	PathPrefix string

	// StatusCode filters by exact response status.
	StatusCode int

	// Limit is the maximum number of entries to return; zero means all.
	Limit int

	// Offset is the number of matching entries to skip.
	Offset int
}

// Subscriber is a channel that receives newly recorded entries.
type Subscriber chan *Entry

// SubscribableStore extends Store with real-time notification of new
// entries.
type SubscribableStore interface {
	Store

	// Subscribe registers a subscriber. The returned function
	// unsubscribes and must be called when done.
	Subscribe() (Subscriber, func())
}
