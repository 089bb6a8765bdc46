// Package response provides the VendorResponse entity: a vendor's reply to a
// broadcast, recorded in an append-only ledger and reviewed by an admin.
//
// A response is one of accept, reject, or price_update. Price updates carry
// the vendor's proposed price next to a snapshot of the order's price at
// submission time, so the negotiation history stays readable after the order
// price changes. Each response is reviewed at most once.
package response
