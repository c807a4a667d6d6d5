package huffile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each byte value present in a Tree to its code.
type CodeTable struct {
	codes    [NumSymbols]Code
	present  [NumSymbols]bool
	numCodes int
	minSize  byte
	maxSize  byte
}

// NewCodeTable derives the code of every leaf in t by walking it depth-first,
// left before right.  A nil tree yields an empty table.
func NewCodeTable(t *Tree) CodeTable {
	var ct CodeTable
	if t == nil {
		return ct
	}

	// Each stack item carries its own copy of the path from the root, so
	// nothing pushed for one branch can be observed by its sibling.  The
	// stack never holds more than one pending right sibling per level.

	type stackItem struct {
		id   NodeID
		path Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.Len()))+1)
	stack = append(stack, stackItem{id: t.Root()})

	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.IsLeaf(top.id) {
			assert.Assertf(top.path.Size != 0, "leaf for symbol %d has an empty code", t.Symbol(top.id))
			ct.add(t.Symbol(top.id), top.path)
			continue
		}

		if right := t.Right(top.id); right != NoNode {
			stack = append(stack, stackItem{id: right, path: top.path.Append(1)})
		}
		if left := t.Left(top.id); left != NoNode {
			stack = append(stack, stackItem{id: left, path: top.path.Append(0)})
		}
	}

	return ct
}

func (ct *CodeTable) add(symbol Symbol, hc Code) {
	assert.Assertf(!ct.present[symbol], "symbol %d reached twice", symbol)
	ct.codes[symbol] = hc
	ct.present[symbol] = true
	if ct.numCodes == 0 || ct.minSize > hc.Size {
		ct.minSize = hc.Size
	}
	if ct.numCodes == 0 || ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.numCodes++
}

// Lookup returns the code for a byte value, if it has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Encode returns the code for a byte value.  The byte value must have been
// present in the histogram the table was built from.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	assert.Assertf(ct.present[symbol], "no code for symbol %d", symbol)
	return ct.codes[symbol]
}

// Len returns the number of byte values with a code.
func (ct *CodeTable) Len() int {
	return ct.numCodes
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the byte values with a code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.numCodes)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the table to w.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
