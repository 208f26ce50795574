// Package datasource supplies the session's work-order set.
//
// The Client fetches records from the work-order HTTP API with a bounded
// per-request timeout. The Loader wraps it with the recovery policy the
// rest of the application relies on: any transport, timeout, or decode
// failure is absorbed locally by substituting a generated record set of
// the same shape, tagged with the failure reason for display. Context
// cancellation is the one exception: it is returned untouched, applies
// nothing, and is never reported as an error.
//
// The store and filter logic downstream are agnostic to which source
// produced the records.
package datasource
