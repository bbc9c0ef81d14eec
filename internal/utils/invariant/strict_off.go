//go:build !strictchecks

package invariant

const strictChecks = false
