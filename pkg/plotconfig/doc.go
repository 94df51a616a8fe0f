// Package plotconfig assembles time-series plot configurations from
// independently added scales, axes, series and a cursor policy.
//
// Callers add pieces to a ConfigBuilder in any order. Scales and axes are
// keyed by scale key and merge on repeated additions; series always append.
// GetConfig renders a snapshot of the accumulated state into a
// models.Config ready for the rendering engine.
//
// A ConfigBuilder is not safe for concurrent use.
package plotconfig
