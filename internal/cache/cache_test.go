package cache

import (
	"context"
	"sync"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	type payload struct {
		PurchasePrice float64 `json:"purchasePrice"`
		MonthlyRents  []float64
	}

	a, err := Key("rental", payload{PurchasePrice: 100000, MonthlyRents: []float64{1000}})
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	b, err := Key("rental", payload{PurchasePrice: 100000, MonthlyRents: []float64{1000}})
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if a != b {
		t.Errorf("identical payloads produced different keys: %q vs %q", a, b)
	}

	c, err := Key("rental", payload{PurchasePrice: 100001, MonthlyRents: []float64{1000}})
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if a == c {
		t.Error("different payloads produced the same key")
	}

	d, err := Key("projection", payload{PurchasePrice: 100000, MonthlyRents: []float64{1000}})
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	if a == d {
		t.Error("different prefixes produced the same key")
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("expected a miss for an unset key")
	}
	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, ok := c.Get(ctx, "k")
	if !ok || val != "v" {
		t.Errorf("Get returned (%q, %v), expected (v, true)", val, ok)
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "shared", "value")
			c.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	if val, ok := c.Get(ctx, "shared"); !ok || val != "value" {
		t.Errorf("Get returned (%q, %v) after concurrent writes", val, ok)
	}
}
