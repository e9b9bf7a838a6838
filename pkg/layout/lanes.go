package layout

import "github.com/archplane/archplane/pkg/diagram"

// Lane ordinals. Lanes group semantically similar components into the same
// horizontal band: all else equal, a queue sorts below a service and above
// a database. Lanes bias ordering only; they never change a node's depth.
const (
	LaneClient    = 0
	LaneIngress   = 1
	LaneCompute   = 2
	LaneMessaging = 3
	LaneStorage   = 4
)

var lanes = map[diagram.Category]int{
	diagram.CategoryClient: LaneClient,
	diagram.CategoryWeb:    LaneClient,
	diagram.CategoryMobile: LaneClient,

	diagram.CategoryGateway:      LaneIngress,
	diagram.CategoryLoadBalancer: LaneIngress,
	diagram.CategoryCDN:          LaneIngress,

	diagram.CategoryService:  LaneCompute,
	diagram.CategoryWorker:   LaneCompute,
	diagram.CategoryFunction: LaneCompute,
	diagram.CategoryAuth:     LaneCompute,
	diagram.CategoryExternal: LaneCompute,

	diagram.CategoryQueue:    LaneMessaging,
	diagram.CategoryTopic:    LaneMessaging,
	diagram.CategoryEventBus: LaneMessaging,

	diagram.CategoryDatabase:  LaneStorage,
	diagram.CategoryCache:     LaneStorage,
	diagram.CategoryBlobStore: LaneStorage,
	diagram.CategoryWarehouse: LaneStorage,
}

// LaneOf maps a component category to its lane ordinal.
// Total: unrecognized categories fall into the compute lane.
func LaneOf(cat diagram.Category) int {
	if lane, ok := lanes[cat]; ok {
		return lane
	}
	return LaneCompute
}
