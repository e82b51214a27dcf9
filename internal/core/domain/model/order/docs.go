// Package order provides the domain model for the order-taking workflow.
// It implements the three successive shapes of an order (unvalidated,
// validated, and priced) together with the constrained value types that make
// invalid states unrepresentable once validation succeeds.
//
// The package includes:
//   - OrderID / OrderLineID: Bounded identifier values
//   - ProductCode: A closed sum over the Widget ('W…') and Gizmo ('G…') variants
//   - OrderQuantity: A closed sum over Units (widgets) and Kilograms (gizmos)
//   - UnvalidatedOrder / ValidatedOrder / PricedOrder: The order shapes, each
//     stage using progressively stronger-typed fields
//   - Acknowledgment / SendResult: The customer notification built after pricing
//   - PlaceOrderEvent: The closed set of domain events emitted per order
//
// Key business rules:
//   - A product code's leading character selects its variant; anything else is
//     a construction failure, not a representable variant
//   - Quantity units are coupled to the product code: widgets are counted in
//     units, gizmos are weighed in kilograms
//   - No shape is ever mutated in place; each stage returns a new,
//     fully-populated value and the prior shape is discarded by the caller
//   - A priced order's amount to bill always equals the sum of its line totals
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
