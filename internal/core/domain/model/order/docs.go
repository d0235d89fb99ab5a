// Package order contains the Order aggregate, the central entity of the
// delivery workflow.
//
// An order is addressed to a recipient, optionally assigned to a courier,
// and moves through a fixed lifecycle enforced by the Status state machine:
// Pending -> Awaiting -> Withdrawn -> Delivered or Returned, with Returned
// orders eligible for re-dispatch back to Awaiting.
//
// Every transition is recorded as an append-only DeliveryEvent, which forms
// the authoritative timeline of the order. The aggregate's own transition
// timestamps only retain the most recent occurrence of each phase.
package order
