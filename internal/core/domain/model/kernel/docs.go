// Package kernel provides the shared constrained value types used across the
// order-taking domain model. Each type wraps a raw primitive and can only be
// created through a validating factory, so no instance is ever observable in
// an invalid state.
//
// The package includes:
//   - String50: A non-empty string bounded at 50 characters, used for names
//     and id-like fields
//   - EmailAddress: A bounded string that must contain the '@' sign
//   - ZipCode: A bounded postal code
//
// All types embed a ConstructorGuard so zero-value instances fail validation,
// and all are immutable after construction.
package kernel
