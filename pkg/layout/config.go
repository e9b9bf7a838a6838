package layout

import "time"

// Default values for Config. These are empirically tuned for diagrams in
// the tens-of-nodes range viewed in a standard editor viewport.
const (
	// DefaultNodeWidth is the fixed node width used for placement,
	// collision boxes, and the external solver request.
	DefaultNodeWidth = 200.0

	// DefaultNodeHeight is the fixed node height.
	DefaultNodeHeight = 80.0

	// DefaultPaddingX is the left canvas margin.
	DefaultPaddingX = 60.0

	// DefaultPaddingY is the top canvas margin.
	DefaultPaddingY = 60.0

	// DefaultColumnGap is the horizontal distance between layer columns.
	DefaultColumnGap = 320.0

	// DefaultRowGap is the vertical distance between ranks within a layer.
	DefaultRowGap = 128.0

	// DefaultCollisionMargin is the minimum clearance between node boxes.
	DefaultCollisionMargin = 24.0

	// DefaultPasses is the number of barycenter refinement sweeps.
	DefaultPasses = 4

	// DefaultCompactDepthBelow compacts column spacing for graphs with
	// fewer than this many layers.
	DefaultCompactDepthBelow = 4

	// DefaultCompactNodesAbove compacts row spacing for graphs with more
	// than this many nodes.
	DefaultCompactNodesAbove = 14

	// DefaultCompactFactor scales the affected gap when compaction applies.
	DefaultCompactFactor = 0.75

	// DefaultLaneBias is added per lane ordinal to a node's barycenter so
	// that ties between structurally identical nodes break by category.
	// Small relative to one rank unit on purpose.
	DefaultLaneBias = 0.25

	// DefaultSolverTimeout bounds the external solver attempt. Without a
	// bound a hung solver would block the supersede check indefinitely.
	DefaultSolverTimeout = 5 * time.Second
)

// Config holds the tunable parameters of the layout engine.
// The zero value is not usable; start from [DefaultConfig].
type Config struct {
	NodeWidth  float64 `json:"node_width"`
	NodeHeight float64 `json:"node_height"`
	PaddingX   float64 `json:"padding_x"`
	PaddingY   float64 `json:"padding_y"`
	ColumnGap  float64 `json:"column_gap"`
	RowGap     float64 `json:"row_gap"`

	// CollisionMargin is the clearance enforced by the collision resolver.
	CollisionMargin float64 `json:"collision_margin"`

	// Passes is the fixed number of crossing-minimization sweeps.
	Passes int `json:"passes"`

	// CompactDepthBelow / CompactNodesAbove / CompactFactor control
	// spacing compaction for shallow or dense graphs. The thresholds are
	// preserved as-is from field tuning; see package docs.
	CompactDepthBelow int     `json:"compact_depth_below"`
	CompactNodesAbove int     `json:"compact_nodes_above"`
	CompactFactor     float64 `json:"compact_factor"`

	// LaneBias weights the lane ordinal in barycenter sorting.
	LaneBias float64 `json:"lane_bias"`

	// SolverTimeout bounds the external solver attempt.
	SolverTimeout time.Duration `json:"solver_timeout"`
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		NodeWidth:         DefaultNodeWidth,
		NodeHeight:        DefaultNodeHeight,
		PaddingX:          DefaultPaddingX,
		PaddingY:          DefaultPaddingY,
		ColumnGap:         DefaultColumnGap,
		RowGap:            DefaultRowGap,
		CollisionMargin:   DefaultCollisionMargin,
		Passes:            DefaultPasses,
		CompactDepthBelow: DefaultCompactDepthBelow,
		CompactNodesAbove: DefaultCompactNodesAbove,
		CompactFactor:     DefaultCompactFactor,
		LaneBias:          DefaultLaneBias,
		SolverTimeout:     DefaultSolverTimeout,
	}
}
