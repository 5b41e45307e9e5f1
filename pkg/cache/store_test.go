package cache

import (
	"fmt"
	"sync"
	"testing"
)

func testKey(path string) Key {
	return Key{Base: "http://localhost:8000", Path: path}
}

func TestStore_PeekMiss(t *testing.T) {
	store := NewStore()

	if _, ok := store.Peek(testKey("/business/42")); ok {
		t.Error("Peek on empty store should miss")
	}
}

func TestStore_PutAndPeek(t *testing.T) {
	store := NewStore()
	key := testKey("/business/42")
	body := []byte(`{"name":"Acme"}`)

	store.Put(key, body)

	got, ok := store.Peek(key)
	if !ok {
		t.Fatal("Peek after Put should hit")
	}
	if string(got) != string(body) {
		t.Errorf("Peek = %s, want %s", got, body)
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	store := NewStore()
	key := testKey("/business/42")

	store.Put(key, []byte(`{"name":"Acme"}`))
	store.Put(key, []byte(`{"name":"Acme Renamed"}`))

	got, ok := store.Peek(key)
	if !ok {
		t.Fatal("Peek after overwrite should hit")
	}
	if string(got) != `{"name":"Acme Renamed"}` {
		t.Errorf("Peek = %s, want overwritten value", got)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1 (overwrite, not append)", store.Len())
	}
}

func TestStore_Has(t *testing.T) {
	store := NewStore()
	key := testKey("/coupons/abc")

	if store.Has(key) {
		t.Error("Has on empty store should be false")
	}

	store.Put(key, []byte(`{}`))

	if !store.Has(key) {
		t.Error("Has after Put should be true")
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()

	// entries of unrelated resource types all go away together
	store.Put(testKey("/business/42"), []byte(`{"name":"Acme"}`))
	store.Put(testKey("/coupons/?business_id=42&active_only=true"), []byte(`[]`))
	store.Put(testKey("/operational-info/by-business/42"), []byte(`{"wifi_available":true}`))

	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3", store.Len())
	}

	store.Clear()

	if store.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", store.Len())
	}
	for _, path := range []string{
		"/business/42",
		"/coupons/?business_id=42&active_only=true",
		"/operational-info/by-business/42",
	} {
		if _, ok := store.Peek(testKey(path)); ok {
			t.Errorf("Peek(%s) after Clear should miss", path)
		}
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := testKey(fmt.Sprintf("/business/%d", i%10))
			store.Put(key, []byte(`{"concurrent":true}`))
			store.Peek(key)
			store.Has(key)
			if i%25 == 0 {
				store.Clear()
			}
		}(i)
	}
	wg.Wait()

	// no corruption: every surviving entry is one of the written bodies
	for i := 0; i < 10; i++ {
		body, ok := store.Peek(testKey(fmt.Sprintf("/business/%d", i)))
		if ok && string(body) != `{"concurrent":true}` {
			t.Errorf("unexpected body %s", body)
		}
	}
}

func TestStore_ConcurrentSameKeyLastWriteWins(t *testing.T) {
	store := NewStore()
	key := testKey("/business/42")

	valueA := []byte(`{"version":1}`)
	valueB := []byte(`{"version":2}`)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); store.Put(key, valueA) }()
	go func() { defer wg.Done(); store.Put(key, valueB) }()
	wg.Wait()

	got, ok := store.Peek(key)
	if !ok {
		t.Fatal("expected an entry after concurrent puts")
	}
	if string(got) != string(valueA) && string(got) != string(valueB) {
		t.Errorf("Peek = %s, want one of the two written values (never a merge)", got)
	}
}
