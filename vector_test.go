package pvec_test

import (
	"testing"

	"github.com/vecbase/pvec"
)

func TestCreateIsEmpty(t *testing.T) {
	t.Parallel()

	v := pvec.Create[int]()
	if v.Count() != 0 {
		t.Fatalf("Create: Count() = %d, want 0", v.Count())
	}

	if _, err := v.Peek(); err != pvec.ErrEmpty {
		t.Errorf("Peek on empty: err = %v, want ErrEmpty", err)
	}

	if _, err := v.Nth(0); err != pvec.ErrIndexOutOfRange {
		t.Errorf("Nth(0) on empty: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestZeroValueIsReadyToUse(t *testing.T) {
	t.Parallel()

	var v pvec.Vector[string]
	if v.Count() != 0 {
		t.Fatalf("zero value Count() = %d, want 0", v.Count())
	}

	v, err := v.Push("a")
	if err != nil {
		t.Fatalf("Push on zero value: %v", err)
	}
	if got, _ := v.Nth(0); got != "a" {
		t.Errorf("Nth(0) = %q, want %q", got, "a")
	}
}

// TestNthAcrossHeights pushes enough elements to force multiple trie-height
// growths (spec scenario S3) and checks every index via Nth against an
// oracle slice.
func TestNthAcrossHeights(t *testing.T) {
	t.Parallel()

	const n = 200_000 // forces height > 2 at branch factor 32

	v := pvec.Create[int]()
	oracle := make([]int, 0, n)

	for i := 0; i < n; i++ {
		var err error
		v, err = v.Push(i * 7)
		if err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
		oracle = append(oracle, i*7)
	}

	if v.Count() != n {
		t.Fatalf("Count() = %d, want %d", v.Count(), n)
	}

	for i, want := range oracle {
		got, err := v.Nth(uint32(i))
		if err != nil {
			t.Fatalf("Nth(%d): unexpected error %v", i, err)
		}
		if got != want {
			t.Fatalf("Nth(%d) = %d, want %d", i, got, want)
		}
	}

	if _, err := v.Nth(uint32(n)); err != pvec.ErrIndexOutOfRange {
		t.Errorf("Nth(Count()): err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPeekIsLastNth(t *testing.T) {
	t.Parallel()

	v := pvec.Create[int]()
	for i := 0; i < 1000; i++ {
		var err error
		v, err = v.Push(i)
		if err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}

		last, err := v.Peek()
		if err != nil {
			t.Fatalf("Peek() at size %d: %v", i+1, err)
		}
		if last != i {
			t.Errorf("Peek() = %d, want %d", last, i)
		}
	}
}
