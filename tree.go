package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BuildTree constructs a Huffman tree from a frequency table by greedy
// minimum-weight merging.  Each symbol with a positive count becomes a leaf.
//
// Ties between equal weights go to the node that entered the heap first.
// Leaves enter in symbol order and merged nodes after them, so the tree is a
// deterministic function of freq.
//
func BuildTree(freq *FrequencyTable) (*Node, error) {
	// Step 1: build a minheap of leaves.

	nodes := make([]nodeAndSeq, 0, NumSymbols)
	var seq uint32
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if count := freq[symbol]; count != 0 {
			nodes = append(nodes, nodeAndSeq{NewLeaf(symbol, count), seq})
			seq++
		}
	}
	if len(nodes) == 0 {
		return nil, errors.WithStack(ErrEmptyTree)
	}

	h := nodeHeap{nodes}
	h.Init()

	// Step 2: pop the two lightest nodes, the first popped becoming the
	// left child, and push their parent back on the heap.  Stop when the
	// root is the only node left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), seq})
		seq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.Weight >= freq[EOF], "root weight %d < EOF count %d", root.Weight, freq[EOF])
	log.Debugf("built tree with %d leaves, root weight %d", len(nodes), root.Weight)
	return root, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
