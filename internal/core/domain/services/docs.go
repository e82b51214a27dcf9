// Package services provides the domain services that make up the place-order
// workflow. Each stage is a small service composing the domain model with the
// external collaborators it needs; the OrderPlacementService chains them into
// the full pipeline:
//
//	UnvalidatedOrder -> ValidatedOrder -> PricedOrder -> events
//
// Control flow is synchronous and single-threaded: every collaborator call is
// invoked inline and its result consumed before the next stage runs. The
// workflow owns no mutable state across invocations; each call is independent
// and side-effect-free except for the collaborator calls it makes.
package services
