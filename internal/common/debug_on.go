//go:build vectordebug

package common

const Debug = true
