// Package slicecore wires beading (package bead), prime-tower planning
// (package primetower), path ordering (package pathplan; its bridge
// detection is not called by the pipeline), extruder-plan motion timing (package extrude) and the
// thermal-lookahead layer buffer (package layerplan) into one pipeline,
// and defines the narrow external interfaces (§6) a mesh/slicing front
// end implements to drive it.
package slicecore
