package harness

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput_OrderPreserved(t *testing.T) {
	out := NewOutput()
	out.Println("first")
	out.Printf("second (%d)", 2)
	out.Println("third")

	assert.Equal(t, []string{"first", "second (2)", "third"}, out.Lines())
	assert.Equal(t, 3, out.Len())
}

func TestOutput_LinesReturnsCopy(t *testing.T) {
	out := NewOutput()
	out.Println("original")

	snapshot := out.Lines()
	snapshot[0] = "mutated"

	assert.Equal(t, []string{"original"}, out.Lines())
}

func TestOutput_Empty(t *testing.T) {
	out := NewOutput()
	assert.Empty(t, out.Lines())
	assert.Equal(t, 0, out.Len())
}

func TestOutput_ConcurrentWrites(t *testing.T) {
	out := NewOutput()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				out.Println("line")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, out.Len())
}
