// Package core provides the node and graph model shared by the search engine
// and its consumers: spatial nodes with an enum-indexed cost table, a
// back-pointer (Via), per-neighbor traversal costs, and a visited-neighbor set,
// all owned by a Graph that also answers obstacle queries.
//
// The Graph G = (V,E) is built once (AddNode, Connect, SetEdgeObstacle) and is
// treated as immutable topology afterwards. Searches only ever mutate the
// per-node search fields:
//
//	Via              – UID of the node this node was reached from (NoVia = -1)
//	Costs            – CostTentative, CostHeuristic, CostTotal, CostCustom+n
//	Visited neighbors – neighbors examined while this node was active
//
// Cost table:
//
//	Every Node carries a fixed-size table of MaxCostKinds float64 slots with a
//	presence bitmask, so an absent cost (HasCost == false) is distinguishable
//	from a zero cost. GetCost on an absent slot returns +Inf, which is the
//	value the search treats as "not yet reached".
//
// Concurrency:
//
//	– Graph.mu (RWMutex) guards the node catalog, obstacles and display UIDs.
//	– Node.muPath guards costs + Via; Node.muVisited guards the visited set.
//	– Topology (positions, neighbor maps) is immutable once a search starts,
//	  so it is read without locking.
//
// A background search writes node fields while a renderer reads them; the
// per-node locks make each field group read atomically, but a renderer may
// observe one node updated and its neighbor not yet. That bounded staleness
// is acceptable for display.
//
// Errors:
//
//	ErrBadUID        – negative UID (reserved for NoVia).
//	ErrDuplicateNode – AddNode with an existing UID.
//	ErrNodeNotFound  – operation references a missing node.
//	ErrSelfLoop      – Connect(a, a, …).
//	ErrNegativeCost  – negative or NaN edge cost.
//	ErrBadCostKind   – cost kind outside [0, MaxCostKinds).
package core
