// Package reports archives sync run reports to object storage.
//
// Each completed sync pass can optionally be persisted as a JSON document
// keyed by start time and run id, giving operators a browsable history of
// what the sync decided without the engine itself holding any state.
//
// Archiving is disabled when no bucket is configured; the sync pass is
// unaffected either way.
package reports
