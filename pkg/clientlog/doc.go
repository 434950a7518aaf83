// Package clientlog renders Fauna client request/response exchanges as
// human-readable debug log blocks and forwards them to a user-supplied sink.
//
// The package has two parts: a pure formatter and a thin observer adapter.
// Render turns one RequestResult into a multi-line text block; NewObserver
// binds a Sink into the callback shape the client's observer hook accepts.
// Neither keeps state across calls, so concurrent exchanges need no
// synchronization here.
//
// # Usage
//
// Build an observer that writes every exchange to stderr, then register it
// through the client's observer option:
//
//	obs := clientlog.NewObserver(clientlog.WriterSink(os.Stderr))
//
// The rendered block looks like:
//
//	Fauna POST /
//	  Request JSON: {
//	    "data": {
//	      "name": "Fido"
//	    }
//	  }
//	  Response headers: {
//	    "content-type": "application/json"
//	  }
//	  Response JSON: {
//	    "resource": {
//	      "ref": "classes/dogs/1"
//	    }
//	  }
//	  Response (201): Network latency 13ms
//
// The text format is stable: tooling that parses these blocks (see the
// faunalog CLI) can rely on the label lines and their two-space indent.
//
// # Package Design
//
// This is a leaf package with no internal dependencies, allowing it to be
// imported by any package without creating import cycles.
package clientlog
