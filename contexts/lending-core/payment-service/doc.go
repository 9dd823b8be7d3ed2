// Package payment implements the Payment Service inside BookCourier.
//
// Layering:
// - domain: payment entity and errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, the checkout gateway, and
//   the order reconciliation callback
// - adapters: concrete HTTP, memory, postgres, and stripe implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under lending-core context.
// - Confirmation is idempotent: the conditional insert on the unique
//   session id elects exactly one winner, and only the winner touches the
//   order through the OrderReconciler port.
// - The gateway is never trusted for mutation ordering: its say is limited
//   to whether the session is paid and the amounts/metadata it carries.
package payment
