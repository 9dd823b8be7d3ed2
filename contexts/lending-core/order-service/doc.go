// Package order implements the Order Service inside BookCourier.
//
// Layering:
// - domain: order entity, delivery-status transition table, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and the catalog read
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under lending-core context.
// - The delivery FSM is enforced only by the transition command; no other
//   code path writes a delivery status except the cascade bulk-cancel and
//   the payment mark-paid entry points, which are not caller-invocable.
// - Listing reads go through the ListingReader port; payment and catalog
//   reach this module through use cases that structurally satisfy their
//   respective ports, wired in bootstrap.
package order
