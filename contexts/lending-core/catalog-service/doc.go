// Package catalog implements the Catalog Service inside BookCourier.
//
// Layering:
// - domain: listing entity, status set, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and the order-cancellation cascade
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under lending-core context.
// - Withdrawal and deletion reach orders only through the OrderCanceller
//   port; the concrete implementation is wired in bootstrap.
package catalog
