package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestPreferenceStore_GetPut(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore()

	if _, found, err := s.Get(ctx, "c1", "color-theme"); err != nil || found {
		t.Fatalf("expected empty store, got found=%v err=%v", found, err)
	}

	if err := s.Put(ctx, "c1", "color-theme", "dark"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, found, err := s.Get(ctx, "c1", "color-theme")
	if err != nil || !found || v != "dark" {
		t.Fatalf("expected dark, got %q found=%v err=%v", v, found, err)
	}

	if _, found, _ := s.Get(ctx, "c2", "color-theme"); found {
		t.Errorf("expected clients to be isolated")
	}

	_ = s.Put(ctx, "c1", "color-theme", "light")
	if v, _, _ := s.Get(ctx, "c1", "color-theme"); v != "light" {
		t.Errorf("expected overwrite to light, got %q", v)
	}
}

func TestPreferenceStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", i%4)
			_ = s.Put(ctx, id, "color-theme", "dark")
			_, _, _ = s.Get(ctx, id, "color-theme")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		if v, _, _ := s.Get(ctx, fmt.Sprintf("c%d", i), "color-theme"); v != "dark" {
			t.Errorf("client c%d: expected dark, got %q", i, v)
		}
	}
}
