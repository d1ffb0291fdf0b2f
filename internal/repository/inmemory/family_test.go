package inmemory

import (
	"testing"
	"time"

	familydomain "visitbook-go/internal/domain/family"
)

func TestFamilyCacheRoundTrip(t *testing.T) {
	cache := NewFamilyCache()
	fam := &familydomain.Family{ID: "fam-1", Nom: "Dupont", Code: "004217"}

	cache.SetByCode("004217", fam, time.Minute)

	got, ok := cache.GetByCode("004217")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.ID != "fam-1" {
		t.Fatalf("expected fam-1, got %s", got.ID)
	}

	// The cache hands back a copy, not the stored value.
	got.Nom = "mutated"
	again, ok := cache.GetByCode("004217")
	if !ok || again.Nom != "Dupont" {
		t.Fatalf("expected stored value unchanged, got %+v", again)
	}
}

func TestFamilyCacheExpiry(t *testing.T) {
	cache := NewFamilyCache()
	fam := &familydomain.Family{ID: "fam-1", Code: "004217"}

	cache.SetByCode("004217", fam, time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := cache.GetByCode("004217"); ok {
		t.Fatalf("expected expired entry evicted")
	}
}

func TestFamilyCacheZeroTTLIgnored(t *testing.T) {
	cache := NewFamilyCache()
	cache.SetByCode("004217", &familydomain.Family{ID: "fam-1", Code: "004217"}, 0)

	if _, ok := cache.GetByCode("004217"); ok {
		t.Fatalf("expected zero ttl set to be dropped")
	}
}

func TestFamilyCacheDeleteAndClear(t *testing.T) {
	cache := NewFamilyCache()
	cache.SetByCode("111111", &familydomain.Family{ID: "fam-1", Code: "111111"}, time.Minute)
	cache.SetByCode("222222", &familydomain.Family{ID: "fam-2", Code: "222222"}, time.Minute)

	cache.DeleteByCode("111111")
	if _, ok := cache.GetByCode("111111"); ok {
		t.Fatalf("expected deleted entry gone")
	}
	if _, ok := cache.GetByCode("222222"); !ok {
		t.Fatalf("expected other entry kept")
	}

	cache.Clear()
	if _, ok := cache.GetByCode("222222"); ok {
		t.Fatalf("expected cache emptied")
	}
}
