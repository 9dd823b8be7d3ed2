// Package identity implements the Identity Service inside BookCourier.
//
// Layering:
// - domain: identity/application entities, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and token verification
// - adapters: concrete HTTP, memory, postgres, and identity-provider implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - The verified caller email always comes from the token verifier, never
//   from a client-supplied field.
package identity
