package decay

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/nuclide/isotope"

	"gonum.org/v1/gonum/mat"
)

// Network is an immutable decay network: the parent table, the per-column
// daughter lists, and the decay matrix built from them. A Network is never
// mutated after Parse returns, so concurrent readers need no locking.
type Network struct {
	parents   map[isotope.Iso]Parent // parent isotope -> (column, λ)
	order     []isotope.Iso          // column -> parent isotope (load order)
	daughters [][]Branch             // column -> decay branches (dataset order)
	matrix    *mat.Dense             // built once by Parse, read-only after
}

// Parse reads a decay dataset from r and returns the fully built Network.
//
// Record grammar (whitespace-separated tokens, '#' starts a comment):
//
//	parent λ n daughter₁ branch₁ ... daughterₙ branchₙ
//
// Stage 1 (Tokenize): strip comments, split into a flat token stream.
// Stage 2 (Validate + Populate): walk records, checking identifiers, decay
// constants, branch ratios, and the per-parent ratio sum; columns are
// assigned in record order.
// Stage 3 (Finalize): build the decay matrix.
//
// Complexity: O(T) over T tokens plus O(P²) matrix allocation.
func Parse(r io.Reader) (*Network, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	net := &Network{parents: make(map[isotope.Iso]Parent)}
	pos := 0
	for rec := 0; pos < len(tokens); rec++ {
		if err = net.readRecord(tokens, &pos, rec); err != nil {
			return nil, err
		}
	}
	if len(net.order) == 0 {
		return nil, ErrEmptyNetwork
	}
	net.buildMatrix()

	return net, nil
}

// tokenize strips '#' comments and splits the input into whitespace tokens.
func tokenize(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decay: read dataset: %w", err)
	}

	return tokens, nil
}

// readRecord consumes one parent record starting at *pos and registers it.
// The record number rec is only used for error context.
func (n *Network) readRecord(tokens []string, pos *int, rec int) error {
	if len(tokens)-*pos < 3 {
		return fmt.Errorf("decay: record %d: truncated header: %w", rec, ErrBadFormat)
	}

	parent, err := parseIso(tokens[*pos])
	if err != nil {
		return fmt.Errorf("decay: record %d: parent: %w", rec, err)
	}
	lambda, err := strconv.ParseFloat(tokens[*pos+1], 64)
	if err != nil {
		return fmt.Errorf("decay: record %d: decay constant %q: %w", rec, tokens[*pos+1], ErrBadFormat)
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return fmt.Errorf("decay: record %d: %w", rec, ErrBadDecayConst)
	}
	count, err := strconv.Atoi(tokens[*pos+2])
	if err != nil || count < 0 {
		return fmt.Errorf("decay: record %d: daughter count %q: %w", rec, tokens[*pos+2], ErrBadFormat)
	}
	*pos += 3

	if _, dup := n.parents[parent]; dup {
		return fmt.Errorf("decay: record %d: isotope %d: %w", rec, parent, ErrDuplicateParent)
	}
	if len(tokens)-*pos < 2*count {
		return fmt.Errorf("decay: record %d: expected %d daughter pairs: %w", rec, count, ErrBadFormat)
	}

	branches := make([]Branch, 0, count)
	sum := 0.0
	for i := 0; i < count; i++ {
		daughter, err := parseIso(tokens[*pos])
		if err != nil {
			return fmt.Errorf("decay: record %d: daughter %d: %w", rec, i, err)
		}
		ratio, err := strconv.ParseFloat(tokens[*pos+1], 64)
		if err != nil {
			return fmt.Errorf("decay: record %d: branch ratio %q: %w", rec, tokens[*pos+1], ErrBadFormat)
		}
		if ratio <= 0 || ratio > 1 || math.IsNaN(ratio) {
			return fmt.Errorf("decay: record %d: daughter %d: %w", rec, i, ErrBadBranchRatio)
		}
		branches = append(branches, Branch{Daughter: daughter, Ratio: ratio})
		sum += ratio
		*pos += 2
	}
	if count > 0 && math.Abs(sum-1) > RatioEPS {
		return fmt.Errorf("decay: record %d: isotope %d: sum=%g: %w", rec, parent, sum, ErrBranchRatioSum)
	}

	// Column assignment is record order: stable for a given dataset.
	n.parents[parent] = Parent{Col: len(n.order), Lambda: lambda}
	n.order = append(n.order, parent)
	n.daughters = append(n.daughters, branches)

	return nil
}

// parseIso converts one token into a validated isotope identifier.
func parseIso(tok string) (isotope.Iso, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("identifier %q: %w", tok, ErrBadFormat)
	}
	tope := isotope.Iso(v)
	if err = isotope.Check(tope); err != nil {
		return 0, err
	}

	return tope, nil
}

// Size returns the number of tracked parent columns.
func (n *Network) Size() int {
	return len(n.order)
}

// Col returns the decay-matrix column assigned to the isotope, and whether
// the isotope is tracked at all.
func (n *Network) Col(tope isotope.Iso) (int, bool) {
	p, ok := n.parents[tope]

	return p.Col, ok
}

// Lambda returns the decay constant (1/month) of a tracked isotope.
func (n *Network) Lambda(tope isotope.Iso) (float64, bool) {
	p, ok := n.parents[tope]

	return p.Lambda, ok
}

// IsoAt returns the parent isotope assigned to the given column.
func (n *Network) IsoAt(col int) (isotope.Iso, bool) {
	if col < 0 || col >= len(n.order) {
		return 0, false
	}

	return n.order[col], true
}

// Daughters returns a copy of the decay branches of the given column.
// Stable parents (and out-of-range columns) yield an empty slice.
func (n *Network) Daughters(col int) []Branch {
	if col < 0 || col >= len(n.daughters) {
		return nil
	}
	out := make([]Branch, len(n.daughters[col]))
	copy(out, n.daughters[col])

	return out
}

// Chain returns every isotope reachable from root through decay branches,
// in breadth-first order, root first. Untracked daughters (sinks) appear in
// the result but terminate their branch. Returns nil when root itself is
// not tracked.
func (n *Network) Chain(root isotope.Iso) []isotope.Iso {
	p, ok := n.parents[root]
	if !ok {
		return nil
	}

	chain := []isotope.Iso{root}
	visited := map[isotope.Iso]bool{root: true}
	queue := []int{p.Col}
	for len(queue) > 0 {
		col := queue[0]
		queue = queue[1:]
		for _, b := range n.daughters[col] {
			if visited[b.Daughter] {
				continue
			}
			visited[b.Daughter] = true
			chain = append(chain, b.Daughter)
			if dp, tracked := n.parents[b.Daughter]; tracked {
				queue = append(queue, dp.Col)
			}
		}
	}

	return chain
}
