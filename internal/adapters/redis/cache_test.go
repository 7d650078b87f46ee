package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "property_search/internal/adapters/redis"
	"property_search/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var got []domain.Property
	ok, err := c.Get(ctx, "search:*", &got)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	in := []domain.Property{{ID: 1, Name: "Lovely Loft", City: "Lisbon", Price: 80}}
	if err := c.Set(ctx, "search:*", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("search:*"); ttl != time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}

	ok, err = c.Get(ctx, "search:*", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Name != "Lovely Loft" || got[0].City != "Lisbon" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := c.Del(ctx, "search:*"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if mr.Exists("search:*") {
		t.Fatal("key still present after Del")
	}
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()
	_ = c.Set(ctx, "search:Lisbon", []domain.Property{{ID: 2}}, 10)
	mr.FastForward(11 * time.Second)

	var got []domain.Property
	if ok, _ := c.Get(ctx, "search:Lisbon", &got); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t)
	_ = mr.Set("search:bad", "{not json")

	var got []domain.Property
	ok, err := c.Get(context.Background(), "search:bad", &got)
	if ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestCache_Unreachable(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()

	var got []domain.Property
	if _, err := c.Get(context.Background(), "k", &got); err == nil {
		t.Fatal("expected error from closed server")
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}
