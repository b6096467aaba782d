package radix

import "fmt"

// Check validates the structural invariants of a set:
//
//   - the root has an empty label, all other labels are non-empty,
//   - every child is stored under the first byte of its label, edges are
//     strictly ascending (i.e., at most one child per first byte),
//   - no node apart from the root is a non-member with less than two children,
//   - no node is reachable twice,
//   - the number of member nodes equals Len().
//
// Check is intended for tests and debugging; the mutating operations keep
// these invariants by construction.
func (s *Set) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil set", ErrInvariantViolation)
	}
	if s.root == nil {
		if s.size != 0 {
			return fmt.Errorf("%w: set without root has size %d", ErrInvariantViolation, s.size)
		}
		return nil
	}
	if len(s.root.label) != 0 {
		return fmt.Errorf("%w: root label %q is not empty", ErrInvariantViolation, s.root.label)
	}
	seen := make(map[*node]struct{})
	members, err := checkNode(s.root, true, seen)
	if err != nil {
		return err
	}
	if members != s.size {
		return fmt.Errorf("%w: size mismatch (%d members != %d)", ErrInvariantViolation, members, s.size)
	}
	return nil
}

func checkNode(n *node, isRoot bool, seen map[*node]struct{}) (members int, err error) {
	if _, dup := seen[n]; dup {
		return 0, fmt.Errorf("%w: node %q is reachable twice", ErrInvariantViolation, n.label)
	}
	seen[n] = struct{}{}
	if len(n.edges) != len(n.children) {
		return 0, fmt.Errorf("%w: edge count mismatch at %q (%d != %d)",
			ErrInvariantViolation, n.label, len(n.edges), len(n.children))
	}
	if !isRoot {
		if len(n.label) == 0 {
			return 0, fmt.Errorf("%w: empty label below root", ErrInvariantViolation)
		}
		if !n.terminal && len(n.children) < 2 {
			return 0, fmt.Errorf("%w: non-member node %q has %d children",
				ErrInvariantViolation, n.label, len(n.children))
		}
	}
	if n.terminal {
		members++
	}
	for i, c := range n.children {
		if c == nil {
			return 0, fmt.Errorf("%w: nil child at %q[%d]", ErrInvariantViolation, n.label, i)
		}
		if len(c.label) == 0 || c.label[0] != n.edges[i] {
			return 0, fmt.Errorf("%w: child %q stored under edge %q",
				ErrInvariantViolation, c.label, n.edges[i])
		}
		if i > 0 && n.edges[i-1] >= n.edges[i] {
			return 0, fmt.Errorf("%w: edges of %q not strictly ascending at %d",
				ErrInvariantViolation, n.label, i)
		}
		m, err := checkNode(c, false, seen)
		if err != nil {
			return 0, err
		}
		members += m
	}
	return members, nil
}

// nodeCount returns the number of nodes in the trie, including the root.
func (s *Set) nodeCount() int {
	if s == nil || s.root == nil {
		return 0
	}
	cnt := 0
	stack := []*node{s.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cnt++
		stack = append(stack, n.children...)
	}
	return cnt
}
