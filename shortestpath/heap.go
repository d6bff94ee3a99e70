package shortestpath

import "github.com/dphilipson/graphs-and-paths/graph"

// pqItem is an entry in the A* frontier: either a real node awaiting
// expansion, or (isGoal == true) the synthetic goal vertex reached
// through the end edge.
type pqItem struct {
	isGoal bool
	nodeId graph.Id
	cost   float64
}

// nodePQ is a min-heap of *pqItem ordered by ascending cost. Like a
// classic lazy-decrease-key Dijkstra/A* queue, stale entries are not
// removed on update; they are instead skipped when popped (see the
// done-set check in GetShortestPath).
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
