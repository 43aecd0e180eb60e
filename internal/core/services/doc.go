// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The failure-handling policy lives here: vector-store errors are
// contained and routed to the fallback store, so Ingest and Retrieve
// return a usable (possibly degraded) result rather than an error
// whenever any persistence path is still alive.
package services
