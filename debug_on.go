//go:build hyperdiskdebug

package hyperdisk

// debugAssertions turns broken geometric invariants into panics.
const debugAssertions = true
