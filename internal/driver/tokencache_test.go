package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tsplain/internal/token"
)

func TestTokenCacheRoundTrip(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}

	key := sha256.Sum256([]byte("const x = 1;"))
	tokens := []token.Token{
		{Kind: token.Keyword, Raw: "const", Line: 1, Column: 0},
		{Kind: token.Ident, Raw: "x", Line: 1, Column: 6},
		{Kind: token.Punct, Raw: "=", Line: 1, Column: 8},
		{Kind: token.Number, Raw: "1", Line: 1, Column: 10},
		{Kind: token.Punct, Raw: ";", Line: 1, Column: 11},
	}
	if err := cache.Put(key, "x.ts", tokens); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, hit, err := cache.Get(key)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if !reflect.DeepEqual(got, tokens) {
		t.Fatalf("round trip mismatch:\n%v\nwant\n%v", got, tokens)
	}
}

func TestTokenCacheMiss(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}
	if _, hit, err := cache.Get(sha256.Sum256([]byte("absent"))); hit || err != nil {
		t.Fatalf("Get on empty cache: hit=%v err=%v", hit, err)
	}
}

func TestTokenCacheCorruptEntryIsMiss(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewTokenCache: %v", err)
	}
	key := sha256.Sum256([]byte("corrupt"))
	p := cache.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("not msgpack"), 0o644); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}
	if _, hit, err := cache.Get(key); hit || err != nil {
		t.Fatalf("Get on corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestTokenCacheNilIsNoop(t *testing.T) {
	var cache *TokenCache
	if err := cache.Put([32]byte{}, "x.ts", nil); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	if _, hit, err := cache.Get([32]byte{}); hit || err != nil {
		t.Fatalf("nil Get: hit=%v err=%v", hit, err)
	}
}
