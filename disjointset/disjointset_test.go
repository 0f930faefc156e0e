package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rangekit/testutil"
)

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		ds, err := New(0)
		require.NoError(t, err)
		assert.Equal(t, 0, ds.SubsetCount())
	})

	t.Run("InitialSize", func(t *testing.T) {
		ds, err := New(5)
		require.NoError(t, err)
		assert.Equal(t, 5, ds.SubsetCount())

		for e := 0; e < 5; e++ {
			root, err := ds.Find(e)
			require.NoError(t, err)
			assert.Equal(t, e, root)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := New(-1)
		assert.ErrorIs(t, err, ErrNegativeElement)
	})
}

func TestDisjointSet_MakeSet(t *testing.T) {
	ds, err := New(0)
	require.NoError(t, err)

	require.NoError(t, ds.MakeSet(0))
	require.NoError(t, ds.MakeSet(7))
	assert.Equal(t, 2, ds.SubsetCount())

	err = ds.MakeSet(7)
	var dup *ErrDuplicateElement
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 7, dup.Element)

	// Failed call leaves the structure unchanged.
	assert.Equal(t, 2, ds.SubsetCount())

	assert.ErrorIs(t, ds.MakeSet(-3), ErrNegativeElement)
}

func TestDisjointSet_MakeSet_SparseGrowth(t *testing.T) {
	ds, err := New(0)
	require.NoError(t, err)

	// Far beyond the default capacity, forcing several array growths.
	require.NoError(t, ds.MakeSet(5000))
	require.NoError(t, ds.MakeSet(3))

	root, err := ds.Find(5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, root)
	assert.Equal(t, 2, ds.SubsetCount())

	// The gap elements are still absent.
	_, err = ds.Find(4999)
	var unknown *ErrUnknownElement
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 4999, unknown.Element)
}

func TestDisjointSet_Find(t *testing.T) {
	ds, err := New(4)
	require.NoError(t, err)

	t.Run("Unknown", func(t *testing.T) {
		_, err := ds.Find(42)
		var unknown *ErrUnknownElement
		assert.ErrorAs(t, err, &unknown)

		_, err = ds.Find(-1)
		assert.ErrorIs(t, err, ErrNegativeElement)
	})

	t.Run("Idempotent", func(t *testing.T) {
		require.NoError(t, ds.Unite(0, 1))
		require.NoError(t, ds.Unite(1, 2))

		for e := 0; e < 4; e++ {
			root, err := ds.Find(e)
			require.NoError(t, err)

			again, err := ds.Find(root)
			require.NoError(t, err)
			assert.Equal(t, root, again)
		}
	})
}

func TestDisjointSet_Unite(t *testing.T) {
	ds, err := New(5)
	require.NoError(t, err)

	require.NoError(t, ds.Unite(0, 1))
	require.NoError(t, ds.Unite(1, 2))
	assert.Equal(t, 3, ds.SubsetCount())

	r0, err := ds.Find(0)
	require.NoError(t, err)
	r2, err := ds.Find(2)
	require.NoError(t, err)
	assert.Equal(t, r0, r2)

	require.NoError(t, ds.Unite(3, 4))
	assert.Equal(t, 2, ds.SubsetCount())

	t.Run("NoOp", func(t *testing.T) {
		// 0 and 2 are already united via 1.
		require.NoError(t, ds.Unite(0, 2))
		assert.Equal(t, 2, ds.SubsetCount())
	})

	t.Run("SelfUnion", func(t *testing.T) {
		assert.ErrorIs(t, ds.Unite(3, 3), ErrSelfUnion)
		assert.Equal(t, 2, ds.SubsetCount())
	})

	t.Run("Unknown", func(t *testing.T) {
		var unknown *ErrUnknownElement
		assert.ErrorAs(t, ds.Unite(0, 99), &unknown)
		assert.ErrorAs(t, ds.Unite(99, 0), &unknown)
		assert.Equal(t, 2, ds.SubsetCount())
	})
}

func TestDisjointSet_SameSubset(t *testing.T) {
	ds, err := New(4)
	require.NoError(t, err)

	require.NoError(t, ds.Unite(0, 3))

	same, err := ds.SameSubset(0, 3)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = ds.SameSubset(0, 1)
	require.NoError(t, err)
	assert.False(t, same)

	_, err = ds.SameSubset(0, 42)
	var unknown *ErrUnknownElement
	assert.ErrorAs(t, err, &unknown)
}

func TestDisjointSet_SubsetCountBookkeeping(t *testing.T) {
	ds, err := New(0)
	require.NoError(t, err)

	const k = 50
	for e := 0; e < k; e++ {
		require.NoError(t, ds.MakeSet(e))
	}

	merges := 0
	for e := 0; e+1 < k; e += 2 {
		require.NoError(t, ds.Unite(e, e+1))
		merges++
	}

	// subset count = successful MakeSets - actual merges.
	assert.Equal(t, k-merges, ds.SubsetCount())

	// No-op unions must not change the count.
	require.NoError(t, ds.Unite(0, 1))
	assert.Equal(t, k-merges, ds.SubsetCount())
}

func TestDisjointSet_Randomized(t *testing.T) {
	const (
		universe = 200
		rounds   = 2000
	)

	rng := testutil.NewRNG(1984)
	oracle := testutil.NewPartitionOracle()

	ds, err := New(universe)
	require.NoError(t, err)
	for e := 0; e < universe; e++ {
		oracle.Add(e)
	}

	for i := 0; i < rounds; i++ {
		a := rng.Intn(universe)
		b := rng.Intn(universe)
		if a == b {
			continue
		}

		require.NoError(t, ds.Unite(a, b))
		oracle.Union(a, b)

		// Spot-check a random pair against the oracle.
		x := rng.Intn(universe)
		y := rng.Intn(universe)
		same, err := ds.SameSubset(x, y)
		require.NoError(t, err)
		assert.Equal(t, oracle.Connected(x, y), same, "pair (%d, %d) after %d unions", x, y, i+1)
	}

	assert.Equal(t, oracle.SetCount(), ds.SubsetCount())

	// Full cross-check at the end.
	for x := 0; x < universe; x++ {
		for y := x + 1; y < universe; y += 17 {
			same, err := ds.SameSubset(x, y)
			require.NoError(t, err)
			require.Equal(t, oracle.Connected(x, y), same, "pair (%d, %d)", x, y)
		}
	}
}

func BenchmarkDisjointSet_UniteFind(b *testing.B) {
	const universe = 1 << 16

	ds, err := New(universe)
	if err != nil {
		b.Fatal(err)
	}

	rng := testutil.NewRNG(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := rng.Intn(universe - 1)
		_ = ds.Unite(x, x+1)
		_, _ = ds.Find(rng.Intn(universe))
	}
}
