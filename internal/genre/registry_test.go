package genre_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-rental/internal/genre"
)

// flatRate prices every rental at a fixed amount regardless of duration.
type flatRate struct {
	amount float64
}

func (f flatRate) Name() string      { return "Flat Rate" }
func (f flatRate) Price(int) float64 { return f.amount }
func (f flatRate) Points(int) int    { return 1 }

func TestRegistrySeededWithBuiltins(t *testing.T) {
	r := genre.NewRegistry()
	require.Equal(t, []string{"CHILDRENS", "NEW_RELEASE", "REGULAR"}, r.Keys())
	require.True(t, r.Has("REGULAR"))
	require.True(t, r.Has("NEW_RELEASE"))
	require.True(t, r.Has("CHILDRENS"))
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	r := genre.NewRegistry()

	lower, ok := r.Lookup("regular")
	require.True(t, ok)
	mixed, ok := r.Lookup("Regular")
	require.True(t, ok)
	upper, ok := r.Lookup("REGULAR")
	require.True(t, ok)
	require.Equal(t, lower, mixed)
	require.Equal(t, mixed, upper)
	require.True(t, r.Has("ReGuLaR"))
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	r := genre.NewRegistry()
	first := flatRate{amount: 1.0}
	second := flatRate{amount: 9.0}

	r.Register("X", first)
	r.Register("x", second)

	got, ok := r.Lookup("X")
	require.True(t, ok)
	require.Equal(t, second, got)
}

func TestRegistryResolveUnknownKey(t *testing.T) {
	r := genre.NewRegistry()
	_, err := r.Resolve("Sci-Fi")
	require.Error(t, err)
	require.ErrorIs(t, err, genre.ErrUnknownGenre)
	require.Contains(t, err.Error(), "Sci-Fi")
}

func TestRegistryOpenExtension(t *testing.T) {
	r := genre.NewRegistry()
	r.Register("flat", flatRate{amount: 4.0})

	g, err := r.Resolve("FLAT")
	require.NoError(t, err)
	require.Equal(t, "Flat Rate", g.Name())
	require.Equal(t, 4.0, g.Price(10))
	require.Equal(t, []string{"CHILDRENS", "FLAT", "NEW_RELEASE", "REGULAR"}, r.Keys())
}
