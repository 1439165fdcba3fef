// Package order contains the catalog order aggregate.
//
// Orders follow a strict fulfilment sequence (Pending -> Confirmed ->
// Processing -> Shipped -> Delivered) with cancellation possible until
// shipping. The confirmation email sent on Pending -> Confirmed is
// fire-and-forget: orders carry no notification tracking fields.
package order
