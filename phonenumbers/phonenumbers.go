/*
Package phonenumbers implements PhoneNumbers, the ordered result
sequence returned by every read query of a phone forwarding index.

It supports:
  - New: an empty sequence.
  - Append: grow the sequence by one string.
  - Get: read-only, index-based access.
  - Len: the current element count.
  - SortAndDedup / Sort: order the sequence under digit.Collate,
    optionally collapsing consecutive duplicates.

Growth policy mirrors the spec precisely rather than delegating to
Go's built-in append: when full, capacity grows to roughly old*3/2,
clamped so it can never overflow the platform int range — this is a
testable property of the forwarding index (spec calls out "capacity
is bounded so as never to overflow the platform size type"), so the
growth arithmetic is made explicit here instead of left to whatever
factor the runtime's append happens to use.

Time Complexity:
  - Append: amortized O(1)
  - Get / Len: O(1)
  - Sort / SortAndDedup: O(n log n)
*/
package phonenumbers

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/btcaf/phonefwd/digit"
)

// clampCapacity computes the next capacity for a growable buffer
// currently holding count of cap, growing by a factor of roughly 3/2,
// but never past max — the overflow ceiling of the platform's integer
// width. Generic over any unsigned integer so the same arithmetic
// serves any capacity-tracking container in this module's lineage,
// the way the teacher shares constraints.Ordered across its own
// generic containers.
func clampCapacity[T constraints.Unsigned](cap, max T) T {
	if cap == max {
		return max
	}
	// Below max/3*2, cap + cap/2 + 1 stays within max; halving before
	// adding keeps every intermediate value inside T's range.
	if cap >= max/3*2 {
		return max
	}
	return cap + cap/2 + 1
}

// PhoneNumbers is a growable, ordered sequence of number strings.
type PhoneNumbers struct {
	numbers []string
	cap     uint
}

// New returns an empty sequence.
func New() *PhoneNumbers {
	return &PhoneNumbers{}
}

// Len returns the number of strings currently held.
func (p *PhoneNumbers) Len() int {
	return len(p.numbers)
}

// Get returns the string at idx, or ("", false) if idx is out of
// range.
func (p *PhoneNumbers) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(p.numbers) {
		return "", false
	}
	return p.numbers[idx], true
}

// maxCapacity is the largest capacity representable without the
// growth arithmetic overflowing a platform uint.
const maxCapacity = ^uint(0)

// Append adds s to the end of the sequence, growing the backing store
// by the 3/2 policy when full.
func (p *PhoneNumbers) Append(s string) {
	if uint(len(p.numbers)) == p.cap {
		newCap := clampCapacity(p.cap, maxCapacity)
		grown := make([]string, len(p.numbers), newCap)
		copy(grown, p.numbers)
		p.numbers = grown
		p.cap = newCap
	}
	p.numbers = append(p.numbers, s)
}

// Sort orders the sequence lexicographically under digit.Collate,
// which is not the same order as a plain byte/string comparison (see
// package digit).
func (p *PhoneNumbers) Sort() {
	sort.Slice(p.numbers, func(i, j int) bool {
		return digit.Compare(p.numbers[i], p.numbers[j]) < 0
	})
}

// Dedup collapses consecutive equal strings in an already-sorted
// sequence, matching the original's dedup pass: it only removes
// adjacent duplicates, not a general unique-set pass.
func (p *PhoneNumbers) Dedup() {
	if len(p.numbers) == 0 {
		return
	}
	out := p.numbers[:1]
	for i := 1; i < len(p.numbers); i++ {
		if p.numbers[i] != p.numbers[i-1] {
			out = append(out, p.numbers[i])
		}
	}
	p.numbers = out
}

// SortAndDedup sorts the sequence and then removes consecutive
// duplicates, the combination phonefwd.Reverse performs on its
// result.
func (p *PhoneNumbers) SortAndDedup() {
	p.Sort()
	p.Dedup()
}
