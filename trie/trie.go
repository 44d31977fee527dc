/*
Package trie implements the radix-12 tree that underlies both the
forward and reverse side of a phone number forwarding index.

A Trie owns a root Node representing the empty number. Every other
node represents the number spelled out by the edge labels from the
root to it (invariant: path equals number). Nodes never store that
number directly — spec calls this out explicitly as a deliberate
memory/time trade: a node's number is instead reconstructed by walking
parent links and, at each step, scanning the parent's Children array
for the slot that points back, which is what ChangePrefix does.

A Node plays one of two roles depending on which Trie it lives in:
  - In the forward trie, FwdTarget (if non-nil) points at the reverse
    trie node this prefix forwards to, and ListElem is this node's own
    handle inside FwdTarget.SourceList.
  - In the reverse trie, SourceList holds the forward-trie nodes
    currently forwarded to this node; FwdTarget and ListElem are
    always nil/unused.

It supports:
  - Insert: create (or find) the node for a number, allocating any
    missing path nodes.
  - Find: look up the node for a number without allocating.
  - FindNextNonEmpty: the single probe step shared by Get and Reverse,
    walking from a node along a number's digits to the next non-empty
    descendant.
  - RemoveBranch: excise an entire subtree by prefix, running a
    caller-supplied callback on every node in that subtree that had a
    forwarding target, so the reverse trie can be kept consistent.
  - DeleteDeadBranch: garbage-collect a maximal chain of now-empty
    leaves, the cleanup every mutation above must trigger to preserve
    the no-dead-branches invariant.

Subtree deletion is iterative (child[0]-rotation), never recursive,
because numbers may be tens of thousands of digits long and a
recursive walk would blow the goroutine stack proportional to depth.

Like the teacher's containers, Trie guards its structural mutations
with a sync.RWMutex; the Node fields it exposes to package phonefwd
(Parent, FwdTarget, ListElem, SourceList) are plumbing reached only
while that lock — or PhoneForward's own outer lock — is held, so they
carry no locking of their own.
*/
package trie

import (
	"sync"

	"github.com/btcaf/phonefwd/digit"
	"github.com/btcaf/phonefwd/dlist"
)

// Node is one node of a Trie. See the package doc for how its fields
// are used differently in the forward trie versus the reverse trie.
type Node struct {
	children [digit.Alphabet]*Node
	parent   *Node

	// FwdTarget is meaningful only for forward-trie nodes: the
	// reverse-trie node this prefix is forwarded to, or nil.
	FwdTarget *Node

	// SourceList is meaningful only for reverse-trie nodes: the
	// forward-trie nodes currently forwarded to this node.
	SourceList dlist.List[*Node]

	// ListElem is meaningful only for forward-trie nodes that are
	// forwarded: this node's own handle inside FwdTarget.SourceList.
	ListElem *dlist.Elem[*Node]
}

// Parent returns node's parent, or nil if node is a trie root.
func (node *Node) Parent() *Node {
	return node.parent
}

// isEmpty reports whether node is a non-root node carrying neither a
// forwarding target nor any incoming source-list entries. Root is
// never considered empty (it is never collected).
func isEmpty(node *Node) bool {
	if node == nil {
		return true
	}
	if node.parent == nil {
		return false
	}
	return node.FwdTarget == nil && node.SourceList.Empty()
}

// Trie is a radix-12 tree over the phone number alphabet, rooted at
// the empty string.
type Trie struct {
	root *Node
	mu   sync.RWMutex
}

// New returns an empty trie containing only its root.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Root returns the trie's root node, representing the empty string.
func (t *Trie) Root() *Node {
	return t.root
}

// deleteDeadBranch walks from node toward the root, freeing every
// empty node that is a leaf, stopping at the first non-empty or
// non-leaf node (or at the root, which is never freed). Must be
// called with t.mu already held.
//
// Precondition: node has no children (i.e. is a leaf) for this to
// have any effect; if node is not a leaf, it returns immediately.
func deleteDeadBranch(node *Node) {
	for i := 0; i < digit.Alphabet; i++ {
		if node.children[i] != nil {
			return
		}
	}

	current := node
	leaf := true
	for isEmpty(current) && leaf {
		parent := current.parent
		for i := 0; i < digit.Alphabet; i++ {
			if parent.children[i] == current {
				parent.children[i] = nil
			} else if parent.children[i] != nil {
				leaf = false
			}
		}
		current = parent
	}
}

// DeleteDeadBranch is the exported, locked form of deleteDeadBranch,
// used by package phonefwd after unlinking a forwarding target from a
// reverse-trie node's source list.
func (t *Trie) DeleteDeadBranch(node *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	deleteDeadBranch(node)
}

func (t *Trie) insert(num string) *Node {
	current := t.root
	i := 0
	for i < len(num) && current.children[digit.ToIndex(num[i])] != nil {
		current = current.children[digit.ToIndex(num[i])]
		i++
	}
	if i == len(num) {
		return current
	}
	for i < len(num) {
		newNode := &Node{parent: current}
		current.children[digit.ToIndex(num[i])] = newNode
		current = newNode
		i++
	}
	return current
}

// Insert returns the node representing num, allocating any missing
// nodes along the path. Inserting an already-present path is a no-op
// that returns the existing node.
func (t *Trie) Insert(num string) *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insert(num)
}

func (t *Trie) find(num string) *Node {
	current := t.root
	for i := 0; i < len(num); i++ {
		if current == nil {
			return nil
		}
		current = current.children[digit.ToIndex(num[i])]
	}
	return current
}

// Find returns the node representing num, or nil if no such node
// exists. Never allocates.
func (t *Trie) Find(num string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.find(num)
}

func findNextNonEmpty(node *Node, s string, i *int) *Node {
	if *i >= len(s) {
		return nil
	}

	original := *i
	current := node.children[digit.ToIndex(s[*i])]
	*i++

	for *i < len(s) && current != nil {
		if !isEmpty(current) {
			return current
		}
		current = current.children[digit.ToIndex(s[*i])]
		*i++
	}

	if isEmpty(current) {
		*i = original
		return nil
	}
	return current
}

// FindNextNonEmpty probes from node along s starting at *i, advancing
// *i one digit per step, and returns the first non-empty descendant
// encountered. node itself is never returned even if non-empty. If
// the probe runs off the trie or the terminator without finding a
// non-empty node, *i is rolled back to its entry value and
// FindNextNonEmpty returns nil. On a successful return, *i points at
// the first character of s not consumed by the walk.
func (t *Trie) FindNextNonEmpty(node *Node, s string, i *int) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return findNextNonEmpty(node, s, i)
}

// deleteSubtree removes the subtree rooted at node (node included),
// iteratively via child[0] rotation so that auxiliary space stays
// O(1) regardless of subtree depth. onRemove, if non-nil, is called
// for every removed node that had a forwarding target, so callers can
// keep a cross-linked structure (the reverse trie) consistent.
func deleteSubtree(node *Node, onRemove func(*Node)) {
	root := node
	current := root

	for root != nil {
		for current.children[0] != nil {
			current = current.children[0]
		}

		for i := 1; i < digit.Alphabet; i++ {
			current.children[0] = root.children[i]
			for current.children[0] != nil {
				current = current.children[0]
			}
		}

		tmp := root
		root = root.children[0]
		if onRemove != nil && tmp.FwdTarget != nil {
			onRemove(tmp)
		}
	}
}

// Delete removes the subtree rooted at node (node included). See
// delete for the iterative algorithm and the onRemove contract.
func (t *Trie) Delete(node *Node, onRemove func(*Node)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	deleteSubtree(node, onRemove)
}

// RemoveBranch removes the node representing num and its entire
// subtree, if present, detaching it from its parent first and running
// dead-branch collection on the parent afterward. onRemove is invoked
// for every removed node that had a forwarding target (see Delete).
func (t *Trie) RemoveBranch(num string, onRemove func(*Node)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.find(num)
	if node == nil {
		return
	}

	parent := node.parent
	for i := 0; i < digit.Alphabet; i++ {
		if parent.children[i] == node {
			parent.children[i] = nil
		}
	}

	deleteSubtree(node, onRemove)
	deleteDeadBranch(parent)
}

// nodeDepth returns the number of edges from the root to node (0 for
// a root, or for nil).
func nodeDepth(node *Node) int {
	n := 0
	for node != nil && node.parent != nil {
		n++
		node = node.parent
	}
	return n
}

// mirror reverses buf[0:n] in place.
func mirror(buf []byte, n int) {
	for i := 0; 2*i < n-1; i++ {
		buf[i], buf[n-i-1] = buf[n-i-1], buf[i]
	}
}

// ChangePrefix returns a fresh string equal to the number represented
// by newPrefixNode, concatenated with num[index:]. newPrefixNode may
// be nil (yielding just num[index:], the "unforwarded" case) or any
// node of either trie; its number is recovered by walking parent
// pointers, so the result is built back-to-front and then mirrored
// into place before the untouched suffix is appended.
func ChangePrefix(num string, newPrefixNode *Node, index int) string {
	prefLen := nodeDepth(newPrefixNode)
	buf := make([]byte, prefLen+len(num)-index)

	if prefLen > 0 {
		current := newPrefixNode
		for i := 0; i < prefLen; i++ {
			parent := current.parent
			for j := 0; j < digit.Alphabet; j++ {
				if parent.children[j] == current {
					buf[i] = digit.FromIndex(j)
					break
				}
			}
			current = parent
		}
		mirror(buf, prefLen)
	}

	copy(buf[prefLen:], num[index:])
	return string(buf)
}
