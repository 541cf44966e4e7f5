package pure

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Trie stores values under key paths. It holds at most 2*maxSize entries:
// when the head generation fills up, the older one is dropped and a fresh head starts.
//
// Trie is not safe for concurrent use; Table guards each Trie with a mutex.
type Trie[O any] struct {
	memos   [2]map[ComparableOrString]any
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return Trie[O]{
		memos:   [2]map[ComparableOrString]any{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		if m, k, ok := lookup(t.memos[idx], keys); ok {
			if v, ok := m[k]; ok {
				return v.(O), true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = map[ComparableOrString]any{}
		t.size = 0
	}
	m, k := create(t.memos[t.headIdx], keys)
	if _, ok := m[k]; !ok {
		t.size++
	}
	m[k] = value
}

// lookup walks keys[:len-1] without creating branches.
func lookup(m map[ComparableOrString]any, keys []ComparableOrString) (map[ComparableOrString]any, ComparableOrString, bool) {
	last := mustLast(keys)
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[ComparableOrString]any)
		if !ok {
			return nil, nil, false
		}
		m = next
	}
	return m, last, true
}

// create walks keys[:len-1], creating missing branches.
func create(m map[ComparableOrString]any, keys []ComparableOrString) (map[ComparableOrString]any, ComparableOrString) {
	last := mustLast(keys)
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[ComparableOrString]any)
		if !ok {
			next = map[ComparableOrString]any{}
			m[k] = next
		}
		m = next
	}
	return m, last
}

func mustLast(keys []ComparableOrString) ComparableOrString {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
	return keys[len(keys)-1]
}

// Table is a Trie split into shards, each behind its own mutex.
// A key path always lands on the same shard.
type Table[O any] struct {
	shards []*shard[O]
}

type shard[O any] struct {
	mu   sync.Mutex
	trie Trie[O]
}

// NewTable splits maxSize evenly over numShards tries.
func NewTable[O any](maxSize uint32, numShards int) *Table[O] {
	if numShards <= 0 {
		numShards = 1
	}
	perShard := max(maxSize/uint32(numShards), 1)
	shards := make([]*shard[O], numShards)
	for i := range shards {
		shards[i] = &shard[O]{trie: NewTrie[O](perShard)}
	}
	return &Table[O]{shards: shards}
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	s := t.shardOf(keys)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trie.Load(keys)
}

func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	s := t.shardOf(keys)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.Store(keys, value)
}

func (t *Table[O]) shardOf(keys []ComparableOrString) *shard[O] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[hashKeys(keys)%uint64(len(t.shards))]
}

func hashKeys(keys []ComparableOrString) uint64 {
	h := xxhash.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%T:%v\x00", k, k)
	}
	return h.Sum64()
}
