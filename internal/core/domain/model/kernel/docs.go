// Package kernel holds shared domain primitives used by every aggregate:
// currently the UUID value object. Nothing in this package depends on any
// other domain package.
package kernel
