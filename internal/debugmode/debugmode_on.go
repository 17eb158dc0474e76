//go:build eco_debug

// Package debugmode exposes a single build-tag-controlled constant that
// other packages use to compile in, or compile out, structural invariant
// checks and container-identity tracking.
//
// Build with -tags eco_debug to enable. Follows the same per-file
// build-tag convention as a GOOS-suffixed source file, generalized from
// GOOS to a custom tag.
package debugmode

// Enabled is true when the eco_debug build tag is set.
const Enabled = true
