// Package dispatch provides the Dispatch aggregate, the central workflow
// object of the haulage domain.
//
// A dispatch binds a claimed truck to a pending order and carries the job
// through the physical fulfillment sequence: journey start, weigh-in with
// the loaded truck, unloading, weigh-out with the empty truck, completion.
// Each step stamps its own timestamp, the two weighings record the gross
// and tare weights, and the delivered net weight is derived, never stored.
//
// The Status type encodes the state machine; Dispatch methods wrap the raw
// status transitions with the aggregate-level invariants (weight recording,
// timestamp stamping, the tare < gross rule). Attachment is a child entity
// holding proof photos captured along the way.
package dispatch
