package cart

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	raw, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return raw, nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) CartSnapshotKey(sessionID string) string {
	return "printshop:cart:" + sessionID
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()
	kv := newFakeKV()
	store := &SnapshotStore{kv: kv, keyer: kv, ttl: time.Hour}
	ctx := context.Background()

	cart := &Cart{Items: []LineItem{
		{Product: ProductSnapshot{ID: "prod-a", Name: "Business Cards", PricePaise: 10000, MinQuantity: 1}, Quantity: 2},
		{Product: ProductSnapshot{ID: "prod-b", Name: "Letterheads", PricePaise: 5000, MinQuantity: 1}, Quantity: 1,
			Customization: &Customization{Paper: "matte"}},
	}}

	if err := store.Save(ctx, "sess-1", cart); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(loaded.Items))
	}
	if loaded.Items[0].Product.ID != "prod-a" || loaded.Items[1].Product.ID != "prod-b" {
		t.Fatal("line order lost in round trip")
	}
	if loaded.Items[1].Customization == nil || loaded.Items[1].Customization.Paper != "matte" {
		t.Fatal("customization lost in round trip")
	}
	if loaded.TotalPaise() != 25000 {
		t.Fatalf("expected total 25000, got %d", loaded.TotalPaise())
	}
}

func TestSnapshotStoreMissingLoadsEmpty(t *testing.T) {
	t.Parallel()
	kv := newFakeKV()
	store := &SnapshotStore{kv: kv, keyer: kv, ttl: time.Hour}

	cart, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatal("missing snapshot should load as empty cart")
	}
}

func TestSnapshotStoreCorruptLoadsEmpty(t *testing.T) {
	t.Parallel()
	kv := newFakeKV()
	store := &SnapshotStore{kv: kv, keyer: kv, ttl: time.Hour}
	kv.data[kv.CartSnapshotKey("sess-1")] = "{not json"

	cart, err := store.Load(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatal("corrupt snapshot should load as empty cart")
	}
}

func TestSnapshotStoreDelete(t *testing.T) {
	t.Parallel()
	kv := newFakeKV()
	store := &SnapshotStore{kv: kv, keyer: kv, ttl: time.Hour}
	ctx := context.Background()

	if err := store.Save(ctx, "sess-1", &Cart{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := kv.data[kv.CartSnapshotKey("sess-1")]; ok {
		t.Fatal("snapshot should be gone after delete")
	}
}
