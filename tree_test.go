package huffman

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

// countLeaves returns the number of leaves and fails if any internal node
// lacks a child.
func countLeaves(t *testing.T, node *Node) int {
	t.Helper()
	if node.IsLeaf() {
		return 1
	}
	if node.Left == nil || node.Right == nil {
		t.Fatalf("internal node with one child: %v", node)
	}
	return countLeaves(t, node.Left) + countLeaves(t, node.Right)
}

func TestBuildTree_Empty(t *testing.T) {
	var freq FrequencyTable
	root, err := BuildTree(&freq)
	if !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
	if root != nil {
		t.Errorf("expected nil root, got %v", root)
	}
}

func TestBuildTree_OnlyEOF(t *testing.T) {
	var freq FrequencyTable
	freq[EOF] = 1
	root, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !root.IsLeaf() || root.Symbol != EOF {
		t.Errorf("expected a lone EOF leaf, got %v", root)
	}
}

func TestBuildTree_Weights(t *testing.T) {
	var freq FrequencyTable
	freq['A'] = 3
	freq['B'] = 1
	freq[EOF] = 1
	root, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.Weight != 5 {
		t.Errorf("wrong root weight:\n\texpect: %d\n\tactual: %d", 5, root.Weight)
	}
	if n := countLeaves(t, root); n != 3 {
		t.Errorf("wrong leaf count:\n\texpect: %d\n\tactual: %d", 3, n)
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca1))
	var freq FrequencyTable
	for symbol := Symbol(0); symbol < NumLiterals; symbol++ {
		freq[symbol] = uint64(rng.Intn(4))
	}
	freq[EOF] = 1

	a, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	b, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("two builds from the same table differ:\n\t%v\n\t%v", a, b)
	}
	if n := countLeaves(t, a); n != freq.Leaves() {
		t.Errorf("wrong leaf count:\n\texpect: %d\n\tactual: %d", freq.Leaves(), n)
	}
}

func TestBuildTree_Fibonacci(t *testing.T) {
	// Fibonacci weights give the deepest possible tree.
	var freq FrequencyTable
	a, b := uint64(1), uint64(2)
	for symbol := Symbol(0); symbol < 40; symbol++ {
		freq[symbol] = a
		a, b = b, a+b
	}
	freq[EOF] = 1

	root, err := BuildTree(&freq)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	e, err := NewEncoder(root)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	if e.MaxSize() < 40 {
		t.Errorf("expected a code longer than 40 bits, got max %d", e.MaxSize())
	}
}
