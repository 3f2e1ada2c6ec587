//go:build rotation3d_debug

package spatialmath

const debugAssertions = true
