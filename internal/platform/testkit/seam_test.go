package testkit

import (
	"sync"
	"testing"
	"time"
)

var openFn = func(path string) string { return "real:" + path }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &openFn, func(path string) string { return "fake:" + path })
		if got := openFn("movies.json"); got != "fake:movies.json" {
			t.Fatalf("swap not applied, got %q", got)
		}
	})
	if got := openFn("movies.json"); got != "real:movies.json" {
		t.Fatalf("swap not restored, got %q", got)
	}
}

func TestSerialDoesNotInterleave(t *testing.T) {
	var mu sync.Mutex
	var seq []string
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"A", "B"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				record(name + "-start")
				time.Sleep(20 * time.Millisecond)
				record(name + "-end")
			})
		}
	})

	if len(seq) != 4 {
		t.Fatalf("seq = %v", seq)
	}
	if seq[0][:1] != seq[1][:1] || seq[2][:1] != seq[3][:1] {
		t.Fatalf("interleaved: %v", seq)
	}
}
