// Package broadcast provides the Broadcast entity: a single order offer sent
// to a single vendor during fan-out.
//
// Each broadcast is unique per (order, vendor) pair and carries a 24 hour
// response window. Its status tracks the vendor's reaction: pending until the
// vendor accepts or rejects, or expired once the window closes without a
// response.
package broadcast
