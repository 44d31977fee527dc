/*
Package phonefwd implements PhoneForward, a mutable index of phone
number prefix forwardings: rules of the form "any number beginning
with A is rewritten to begin with B instead".

PhoneForward is built from two cross-linked trie.Trie instances — a
forward trie keyed by the forwarded-from prefixes, and a reverse trie
keyed by the forwarded-to prefixes — kept mutually consistent so that
Get is O(|B|) and Reverse/GetReverse are O(|B| * k) for k the number of
distinct prefixes mapped to a given B. Maintaining that cross-link
under insertion and removal, and the prefix-substitution algorithms
built on top of it, is the load-bearing part of this package; package
trie only supplies the underlying radix-12 tree and its iterative
subtree deletion.

It supports:
  - Add: install (or overwrite) a forwarding A -> B.
  - Remove: excise every forwarding whose source has a given prefix.
  - Get: rewrite a number by its longest forwarded prefix.
  - Reverse: every number that Get would rewrite to s, plus s itself,
    sorted and deduplicated.
  - GetReverse: the exact preimage of s under Get — no over- or
    under-approximation, and (unlike Reverse) never any duplicates to
    remove.

Like the teacher's top-level containers, PhoneForward guards its
operations with a sync.RWMutex, even though spec.md scopes
cross-operation transactions out of bounds — see SPEC_FULL.md §3 for
why the teacher's baseline locking convention is carried regardless.

Time Complexity:
  - Add: O(|A| + |B|)
  - Remove: O(|A| + size of the excised subtree)
  - Get: O(|s|)
  - Reverse / GetReverse: O(|s| + total size of the matching result)
*/
package phonefwd

import (
	"sync"

	"github.com/btcaf/phonefwd/digit"
	"github.com/btcaf/phonefwd/phonenumbers"
	"github.com/btcaf/phonefwd/trie"
)

// PhoneForward holds the two cross-linked tries backing a forwarding
// index.
type PhoneForward struct {
	fwd *trie.Trie
	rev *trie.Trie
	mu  sync.RWMutex
}

// New returns an empty forwarding index.
func New() *PhoneForward {
	return &PhoneForward{fwd: trie.New(), rev: trie.New()}
}

// detach undoes f's current forwarding, if any: it removes f's entry
// from its target's source list and runs dead-branch collection on
// the target, but leaves f's own FwdTarget/ListElem fields untouched
// (Add immediately overwrites them; the removal paths free f outright
// via package trie's onRemove callback).
func (pf *PhoneForward) detach(f *trie.Node) {
	if f.FwdTarget == nil {
		return
	}
	target := f.FwdTarget
	target.SourceList.Remove(f.ListElem)
	pf.rev.DeleteDeadBranch(target)
}

// Add installs a forwarding from a to b, replacing any forwarding a
// previously had (last-writer-wins). It reports false, doing nothing,
// if a or b is not a valid number or a equals b.
func (pf *PhoneForward) Add(a, b string) bool {
	if !digit.IsValidNumber(a) || !digit.IsValidNumber(b) || a == b {
		return false
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()

	f := pf.fwd.Insert(a)
	r := pf.rev.Insert(b)
	e := r.SourceList.PushFront(f)

	pf.detach(f)
	f.FwdTarget = r
	f.ListElem = e
	return true
}

// Remove excises every forwarding whose source has a as a prefix. It
// is a silent no-op if a is invalid or no such forwarding exists.
func (pf *PhoneForward) Remove(a string) {
	if !digit.IsValidNumber(a) {
		return
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()

	pf.fwd.RemoveBranch(a, pf.detach)
}

// Get rewrites s by the longest forwarded prefix of s, or returns s
// unchanged if no prefix of s is forwarded. If s is invalid, Get
// returns an empty sequence.
func (pf *PhoneForward) Get(s string) *phonenumbers.PhoneNumbers {
	result := phonenumbers.New()
	if !digit.IsValidNumber(s) {
		return result
	}

	pf.mu.RLock()
	defer pf.mu.RUnlock()

	maxPrefix := pf.fwd.Root()
	i := 0
	for {
		candidate := pf.fwd.FindNextNonEmpty(maxPrefix, s, &i)
		if candidate == nil {
			break
		}
		maxPrefix = candidate
	}

	result.Append(trie.ChangePrefix(s, maxPrefix.FwdTarget, i))
	return result
}

// Reverse returns every number x such that Get(x) would yield s, plus
// s itself, sorted under digit.Collate with consecutive duplicates
// removed.
func (pf *PhoneForward) Reverse(s string) *phonenumbers.PhoneNumbers {
	result := phonenumbers.New()
	if !digit.IsValidNumber(s) {
		return result
	}

	pf.mu.RLock()
	defer pf.mu.RUnlock()

	result.Append(s)

	i := 0
	cursor := pf.rev.Root()
	for {
		next := pf.rev.FindNextNonEmpty(cursor, s, &i)
		if next == nil {
			break
		}
		for e := next.SourceList.Front(); e != nil; e = e.Next() {
			result.Append(trie.ChangePrefix(s, e.Key, i))
		}
		cursor = next
	}

	result.SortAndDedup()
	return result
}

// GetReverse returns the exact preimage of s under Get: every x with
// Get(x) == s, sorted under digit.Collate. Unlike Reverse, the
// candidates it enumerates are never duplicated, so no dedup pass is
// needed.
func (pf *PhoneForward) GetReverse(s string) *phonenumbers.PhoneNumbers {
	result := phonenumbers.New()
	if !digit.IsValidNumber(s) {
		return result
	}

	pf.mu.RLock()
	defer pf.mu.RUnlock()

	j := 0
	if pf.fwd.FindNextNonEmpty(pf.fwd.Root(), s, &j) == nil {
		result.Append(s)
	}

	i := 0
	cursor := pf.rev.Root()
	for {
		next := pf.rev.FindNextNonEmpty(cursor, s, &i)
		if next == nil {
			break
		}
		for e := next.SourceList.Front(); e != nil; e = e.Next() {
			f := e.Key
			probe := i
			if pf.fwd.FindNextNonEmpty(f, s, &probe) == nil {
				result.Append(trie.ChangePrefix(s, f, i))
			}
		}
		cursor = next
	}

	result.Sort()
	return result
}
