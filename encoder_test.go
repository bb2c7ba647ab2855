package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func makeTestTree() *Node {
	// ((B EOF) A)
	return NewInternal(
		NewInternal(NewLeaf('B', 1), NewLeaf(EOF, 1)),
		NewLeaf('A', 3))
}

func TestEncoder(t *testing.T) {
	e, err := NewEncoder(makeTestTree())
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode(65) = \"1\"\n",
		"\tEncode(66) = \"00\"\n",
		"\tEncode(256) = \"01\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if n := e.NumCodes(); n != 3 {
		t.Errorf("wrong number of codes:\n\texpect: %d\n\tactual: %d", 3, n)
	}
	if _, ok := e.Encode('C'); ok {
		t.Errorf("expected no code for a symbol outside the tree")
	}
	if _, ok := e.Encode(InvalidSymbol); ok {
		t.Errorf("expected no code for InvalidSymbol")
	}

	sizes := e.SizeBySymbol()
	if sizes['A'] != 1 || sizes['B'] != 2 || sizes[EOF] != 2 || sizes['C'] != 0 {
		t.Errorf("wrong sizes: A=%d B=%d EOF=%d C=%d", sizes['A'], sizes['B'], sizes[EOF], sizes['C'])
	}
}

func TestEncoder_SingleLeaf(t *testing.T) {
	e, err := NewEncoder(NewLeaf(EOF, 1))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	hc, ok := e.Encode(EOF)
	if !ok {
		t.Fatalf("no code for EOF")
	}
	if hc.Size != 1 {
		t.Errorf("expected a one-bit code, got %s", hc)
	}
}

func TestEncoder_MissingEOF(t *testing.T) {
	_, err := NewEncoder(NewInternal(NewLeaf('A', 1), NewLeaf('B', 1)))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncoder_NilRoot(t *testing.T) {
	_, err := NewEncoder(nil)
	if !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca11825a5e7))

	for iteration := 0; iteration < 20; iteration++ {
		var freq FrequencyTable
		for symbol := Symbol(0); symbol < NumLiterals; symbol++ {
			if rng.Intn(3) != 0 {
				freq[symbol] = uint64(rng.Intn(1000))
			}
		}
		freq[EOF] = 1

		root, err := BuildTree(&freq)
		if err != nil {
			t.Fatalf("iteration %d: BuildTree failed: %v", iteration, err)
		}
		e, err := NewEncoder(root)
		if err != nil {
			t.Fatalf("iteration %d: NewEncoder failed: %v", iteration, err)
		}

		var codes []Code
		for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
			hc, ok := e.Encode(symbol)
			if ok != (freq[symbol] != 0) {
				t.Errorf("iteration %d: symbol %d has count %d but ok=%t", iteration, symbol, freq[symbol], ok)
			}
			if ok {
				codes = append(codes, hc)
			}
		}

		for i := range codes {
			for j := range codes {
				if i != j && codes[i].HasPrefix(codes[j]) {
					t.Errorf("iteration %d: code %s has prefix %s", iteration, codes[i], codes[j])
				}
			}
		}
	}
}
