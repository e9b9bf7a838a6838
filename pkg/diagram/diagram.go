package diagram

// =============================================================================
// Categories - Single Source of Truth
// =============================================================================

// Category classifies a node as a kind of architecture component.
// The set is fixed; unknown values are tolerated and treated as generic
// compute components by the layout engine.
type Category string

// Client-facing components.
const (
	CategoryClient Category = "client"
	CategoryWeb    Category = "web"
	CategoryMobile Category = "mobile"
)

// Ingress and routing components.
const (
	CategoryGateway      Category = "gateway"
	CategoryLoadBalancer Category = "loadbalancer"
	CategoryCDN          Category = "cdn"
)

// Compute components.
const (
	CategoryService  Category = "service"
	CategoryWorker   Category = "worker"
	CategoryFunction Category = "function"
	CategoryAuth     Category = "auth"
	CategoryExternal Category = "external"
)

// Messaging components.
const (
	CategoryQueue    Category = "queue"
	CategoryTopic    Category = "topic"
	CategoryEventBus Category = "eventbus"
)

// Storage components.
const (
	CategoryDatabase  Category = "database"
	CategoryCache     Category = "cache"
	CategoryBlobStore Category = "blobstore"
	CategoryWarehouse Category = "warehouse"
)

// =============================================================================
// Graph - Diagram Serialization
// =============================================================================

// Graph is the canonical serialization format for architecture diagrams.
// Used for API requests/responses, storage, and caching.
//
// Graphs are passed by value through the layout engine: the engine returns
// a new Graph whose nodes carry computed coordinates, leaving the caller's
// value untouched.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// Node is a single architecture component on the canvas.
//
// X and Y are advisory on input: generated diagrams carry untrusted or zero
// coordinates, and the layout engine replaces them wholesale. They are only
// consulted as tiebreak hints (initial ordering, cyclic fallback depth).
type Node struct {
	ID       string         `json:"id" bson:"id"`
	Label    string         `json:"label,omitempty" bson:"label,omitempty"`
	Category Category       `json:"category,omitempty" bson:"category,omitempty"`
	X        float64        `json:"x" bson:"x"`
	Y        float64        `json:"y" bson:"y"`
	Meta     map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed, optionally labeled connection between two nodes.
type Edge struct {
	ID     string `json:"id" bson:"id"`
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Label  string `json:"label,omitempty" bson:"label,omitempty"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int { return len(g.Edges) }
