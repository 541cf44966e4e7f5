package seqfn_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/on-the-ground/lazy_ive_go/lazy"
	"github.com/on-the-ground/lazy_ive_go/regen"
	"github.com/on-the-ground/lazy_ive_go/seqfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func counted(pulled *int, values ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestFirst_OnReplayStopsAtMatch(t *testing.T) {
	pulled := 0
	r := regen.FromSeq(counted(&pulled, 1, 2, 3, 4, 5, 6))

	res, err := seqfn.FirstErr(func(x int) bool { return x > 3 }, r.All())
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.Equal(t, 4, res.Value)
	assert.Equal(t, 4, pulled)
	assert.Equal(t, 4, r.Cursor())

	all, err := r.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, all)
	assert.Equal(t, 6, pulled)
}

func TestFirstErr_ForwardsPullFailureBeforeMatch(t *testing.T) {
	pulls := 0
	r := regen.FromFunc(func() (int, bool, error) {
		pulls++
		if pulls == 2 {
			return 0, false, errBoom
		}
		return pulls, pulls <= 6, nil
	})
	above3 := func(x int) bool { return x > 3 }

	res, err := seqfn.FirstErr(above3, r.All())
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, res.Ok)
	assert.Equal(t, 1, r.Cursor())

	// the failed pull is retried on the next traversal
	res, err = seqfn.FirstErr(above3, r.All())
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.Equal(t, 4, res.Value)
}

func TestFirst_NoMatch(t *testing.T) {
	res := seqfn.First(func(x int) bool { return x > 10 }, slices.Values([]int{1, 2}))
	assert.False(t, res.Ok)
}

func TestFirst_NilPredicateSkipsNil(t *testing.T) {
	a, b := "a", "b"
	res := seqfn.First(nil, slices.Values([]*string{nil, nil, &a, &b}))
	if assert.True(t, res.Ok) {
		assert.Same(t, &a, res.Value)
	}

	none := seqfn.First(nil, slices.Values([]*string{nil, nil}))
	assert.False(t, none.Ok)

	// non-nillable zero values are not "none"
	zero := seqfn.First(nil, slices.Values([]int{0, 1}))
	assert.True(t, zero.Ok)
	assert.Equal(t, 0, zero.Value)
}

func TestFirstItem_ResolvesPromisesLazily(t *testing.T) {
	evaluated := 0
	promise := func(v int) lazy.Item[int] {
		return lazy.Promise[int](lazy.Defer(lazy.NoErr(func() int {
			evaluated++
			return v
		})))
	}
	items := []lazy.Item[int]{lazy.Plain(1), promise(5), promise(9)}

	res, err := seqfn.FirstItem(func(x int) bool { return x > 2 }, slices.Values(items))
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.Equal(t, 5, res.Value)
	assert.Equal(t, 1, evaluated)
}

func TestFirstItem_ForwardsResolutionError(t *testing.T) {
	items := []lazy.Item[int]{
		lazy.Plain(1),
		lazy.Promise[int](lazy.Defer(func() (int, error) { return 0, errBoom })),
		lazy.Plain(7),
	}

	res, err := seqfn.FirstItem(func(x int) bool { return x > 5 }, slices.Values(items))
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, res.Ok)
}

func TestEvaluatePromises_Restartable(t *testing.T) {
	count := 0
	memo := lazy.Memoize(lazy.NoErr(func() string {
		count++
		return "m"
	}))
	items := []lazy.Item[string]{lazy.Plain("p"), lazy.Promise[string](memo)}
	seq := seqfn.EvaluatePromises(slices.Values(items))

	for range 2 {
		var got []string
		for v, err := range seq {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []string{"p", "m"}, got)
	}
	assert.Equal(t, 1, count)
}

type handler struct {
	name  string
	reply string
}

func TestFirstValue(t *testing.T) {
	items := []lazy.Item[handler]{
		lazy.Plain(handler{name: "a"}),
		lazy.Promise[handler](lazy.Defer(lazy.NoErr(func() handler {
			return handler{name: "b", reply: "pong"}
		}))),
		lazy.Plain(handler{name: "c", reply: "late"}),
	}

	res, err := seqfn.FirstValue(slices.Values(items), func(h handler) (string, bool) {
		return h.reply, h.reply != ""
	})
	require.NoError(t, err)
	assert.True(t, res.Ok)
	assert.Equal(t, "pong", res.Value)
}

func TestUniq(t *testing.T) {
	got := slices.Collect(seqfn.Uniq(slices.Values([]int{1, 2, 2, 3, 1, 4})))
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	seq := seqfn.Uniq(slices.Values([]string{"x", "x", "y"}))
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}
