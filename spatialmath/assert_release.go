//go:build !rotation3d_debug

package spatialmath

// debugAssertions is off by default; build with -tags rotation3d_debug to check the
// preconditions of every unit conversion.
const debugAssertions = false
