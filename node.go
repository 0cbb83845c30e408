package linebreak

// node is a breakpoint in the dynamic-programming lattice (§3.3). Nodes are
// held in a per-call arena ([nodeArena]) and reference each other by index
// rather than by pointer: the lattice is a DAG built strictly forward, so an
// arena released in one piece at the end of the call is a better fit than
// per-node heap allocation (per the design notes' recommendation).
type node struct {
	position    int     // index of the breakpoint item, -1 for the sentinel
	after       int     // start of the next line
	line        int     // 1-based count of lines ending at this break, 0 for sentinel
	adjratio    float64 // adjustment ratio of the line ending here
	fitness     fitness
	totdemerits float64
	previous    int // arena index of the parent node, -1 for the sentinel
}

// nodeArena owns every node allocated during one call to [Break]. Indices
// into it are stable for the lifetime of the call.
type nodeArena struct {
	nodes []node
}

func newNodeArena() *nodeArena {
	return &nodeArena{}
}

// sentinel creates the paragraph-start node and returns its arena index.
func (a *nodeArena) sentinel() int {
	a.nodes = append(a.nodes, node{
		position:    -1,
		after:       0,
		line:        0,
		adjratio:    1, // dummy value, never read: the sentinel has no enclosing line
		fitness:     sentinelFitness,
		totdemerits: 0,
		previous:    -1,
	})
	return 0
}

// add appends a new node and returns its arena index.
func (a *nodeArena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *nodeArena) get(i int) *node {
	return &a.nodes[i]
}
