package radix

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/radix/lcp"
)

// Set is a set of byte-string keys, stored in a compressed radix trie.
//
// A set created by
//
//	Set{}
//
// is a valid object and behaves like the empty set.
//
// Keys are opaque byte sequences; the empty key is a valid member. Keys are
// copied on insertion, clients may re-use their buffers afterwards.
//
//	Operation     |   Set             |  map[string]struct{}
//	--------------+-------------------+---------------------
//	Insert        |   O(len(key))     |   O(len(key))
//	Contains      |   O(len(key))     |   O(len(key))
//	Remove        |   O(len(key))     |   O(len(key))
//	Clone         |   O(nodes)        |   O(n)
//
// Shared prefixes are stored only once, which makes sets of clustered keys
// (URLs, paths, decimal numbers) compact.
type Set struct {
	root *node // created lazily; never pruned
	size int
}

// New creates an empty set.
func New() *Set {
	return &Set{root: &node{}}
}

// From creates a set from a sequence of keys. Keys are inserted in order,
// duplicates are absorbed.
func From(keys ...[]byte) *Set {
	s := New()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// FromStrings creates a set from a sequence of string keys.
func FromStrings(keys ...string) *Set {
	s := New()
	for _, k := range keys {
		s.InsertString(k)
	}
	return s
}

// FromSeq creates a set from the keys produced by an iterator, in
// iteration order.
func FromSeq(seq iter.Seq[[]byte]) *Set {
	s := New()
	if seq == nil {
		return s
	}
	cnt := 0
	for k := range seq {
		s.Insert(k)
		cnt++
	}
	T().Debugf("radix set: built from %d keys, %d distinct", cnt, s.size)
	return s
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Insert adds key to the set. It returns true if key has not been a member
// before, false otherwise.
func (s *Set) Insert(key []byte) bool {
	assert(s != nil, "Insert called for nil set")
	if s.root == nil {
		s.root = &node{}
	}
	n, rest := s.root, key
	for {
		if len(rest) == 0 {
			if n.terminal {
				return false
			}
			n.terminal = true
			s.size++
			return true
		}
		c, slot := n.child(rest[0])
		if c == nil {
			n.addChild(newLeaf(rest))
			s.size++
			return true
		}
		l := lcp.Len(rest, c.label)
		if l == len(c.label) {
			n, rest = c, rest[l:]
			continue
		}
		// key diverges within c's label (or ends there): split the edge
		var leaf *node
		if l < len(rest) {
			leaf = newLeaf(rest[l:])
		}
		mid := split(c, l)
		if leaf == nil {
			mid.terminal = true
		} else {
			mid.addChild(leaf)
		}
		n.children[slot] = mid
		s.size++
		return true
	}
}

// InsertString adds a string key to the set.
func (s *Set) InsertString(key string) bool {
	return s.Insert([]byte(key))
}

// Contains reports whether key is a member of the set.
func (s *Set) Contains(key []byte) bool {
	if s == nil || s.root == nil {
		return false
	}
	n, rest := s.root, key
	for len(rest) > 0 {
		c, _ := n.child(rest[0])
		if c == nil || len(c.label) > len(rest) {
			return false
		}
		if lcp.Len(rest, c.label) != len(c.label) {
			return false
		}
		n, rest = c, rest[len(c.label):]
	}
	return n.terminal
}

// ContainsString reports whether a string key is a member of the set.
func (s *Set) ContainsString(key string) bool {
	return s.Contains([]byte(key))
}

// Remove deletes key from the set. It returns true if key has been a member,
// false otherwise; in the latter case the set is left untouched.
func (s *Set) Remove(key []byte) bool {
	if s == nil || s.root == nil {
		return false
	}
	path := s.locate(key)
	if path == nil {
		return false
	}
	target := path[len(path)-1]
	if !target.terminal {
		return false
	}
	target.terminal = false
	s.size--
	compact(path)
	return true
}

// RemoveString deletes a string key from the set.
func (s *Set) RemoveString(key string) bool {
	return s.Remove([]byte(key))
}

// Clone returns a deep copy of the set. Mutations of the copy never affect s,
// and vice versa.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	return &Set{
		root: cloneNode(s.root),
		size: s.size,
	}
}

// locate follows key from the root and returns the nodes visited, root first.
// The last node's path spells key exactly. If key leaves the trie or ends
// within an edge label, locate returns nil.
func (s *Set) locate(key []byte) []*node {
	path := make([]*node, 1, 8)
	path[0] = s.root
	n, rest := s.root, key
	for len(rest) > 0 {
		c, _ := n.child(rest[0])
		if c == nil || len(c.label) > len(rest) {
			return nil
		}
		if lcp.Len(rest, c.label) != len(c.label) {
			return nil
		}
		path = append(path, c)
		n, rest = c, rest[len(c.label):]
	}
	return path
}

// compact restores the compression invariant bottom-up along path, after the
// last node of path has lost its membership.
//
// Dead leaves are detached from their parents; a non-member with a single
// child is merged with it. Restructuring stops at the first member node or
// branching point. The root is exempt.
func compact(path []*node) {
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.terminal {
			return
		}
		switch len(n.children) {
		case 0:
			parent := path[i-1]
			c, slot := parent.child(n.label[0])
			assert(c == n, "compact: node is not linked from its parent")
			parent.removeChildAt(slot)
			continue
		case 1:
			n.mergeChild()
		}
		return
	}
}
