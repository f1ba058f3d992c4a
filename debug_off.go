//go:build !hyperdiskdebug

package hyperdisk

const debugAssertions = false
