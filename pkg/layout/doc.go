// Package layout computes readable, deterministic 2D placements for
// architecture diagrams.
//
// The engine prefers an external constraint-based solver (see the solver
// subpackage) and falls back to a local four-stage heuristic pipeline:
//
//  1. Depth assignment: longest-path layering via Kahn's algorithm, total
//     even on cyclic input ([AssignDepths]).
//  2. Lane classification: component categories map to ordinal lanes used
//     as ordering tiebreakers ([LaneOf]).
//  3. Crossing minimization: iterative barycenter sweeps with a lane bias
//     ([MinimizeCrossings]).
//  4. Placement and collision resolution: grid mapping with shape-based
//     compaction, then an AABB de-overlap pass ([Place],
//     [ResolveCollisions]).
//
// The fallback pipeline is synchronous and side-effect-free; only the
// solver attempt suspends, and it is cancellable so superseded requests
// never clobber newer layouts.
package layout
