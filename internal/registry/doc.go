// Package registry holds the static catalog of every option the front end
// recognizes: its name, arity, value type, mode applicability, and optional
// default. The catalog is compiled into the binary rather than parsed at
// runtime, so an option name that is neither registered nor explicitly passed
// through is rejected before it can reach the build driver.
//
// Declaration order is part of the contract: the invocation builder walks the
// catalog in this order to produce reproducible argument vectors.
package registry
