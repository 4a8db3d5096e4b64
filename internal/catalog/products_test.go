package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_Add(t *testing.T) {
	products := NewProducts([]string{"Бетон М100"})

	list, err := products.Add("  Бетон М500 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Бетон М100", "Бетон М500"}, list)

	_, err = products.Add("Бетон М100")
	assert.ErrorIs(t, err, ErrProductExists)

	_, err = products.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyProduct)
}

func TestProducts_RenameKeepsPosition(t *testing.T) {
	products := NewProducts([]string{"A", "B", "C"})

	list, err := products.Rename("B", "B2")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B2", "C"}, list)

	_, err = products.Rename("missing", "X")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = products.Rename("A", "C")
	assert.ErrorIs(t, err, ErrProductExists)

	list, err = products.Rename("A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B2", "C"}, list)
}

func TestProducts_Remove(t *testing.T) {
	products := NewProducts([]string{"A", "B", "C"})

	list, err := products.Remove("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, list)
	assert.False(t, products.Contains("B"))

	_, err = products.Remove("B")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProducts_ListIsACopy(t *testing.T) {
	products := NewProducts(DefaultProducts)

	list := products.List()
	list[0] = "changed"

	assert.Equal(t, DefaultProducts[0], products.List()[0])
	assert.Len(t, products.List(), len(DefaultProducts))
}

func TestProducts_ConcurrentMutations(t *testing.T) {
	products := NewProducts(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products.Add("same")
			products.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"same"}, products.List())
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 6)
	assert.Equal(t, "question_1", qs[0].ResponseKey())

	qs[0].Question = "changed"
	assert.NotEqual(t, "changed", Questions()[0].Question)
}
