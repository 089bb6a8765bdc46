// Package order provides the Order aggregate root for the relocation
// marketplace: lifecycle status, approximate price, and vendor assignment.
//
// The package includes:
//   - Order: The aggregate root owning price and vendor assignment
//   - Status: A state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - The approximate price must be set and positive before any broadcast or
//     vendor assignment
//   - An order is assigned to at most one vendor over its lifetime; assigning
//     the same vendor again is idempotent, assigning a different vendor fails
//   - Status follows Pending -> Broadcasted -> Confirmed -> InProgress ->
//     Completed, with Cancelled reachable from any pre-terminal state
//
// Order.AssignVendor is the single domain operation that enforces the
// single-assignment invariant; both the negotiation review flow and the
// direct assignment path go through it, and the persistence layer pairs it
// with a conditional update so concurrent approvals cannot both win.
package order
