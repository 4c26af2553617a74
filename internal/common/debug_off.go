//go:build !vectordebug

package common

// Debug enables precondition assertions. Build with -tags vectordebug to turn it on.
const Debug = false
