package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"tsplain/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores scanned token streams on disk, keyed by the sha256 of
// the file content, so re-explaining an unchanged file skips the scanner.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind   uint8
	Raw    string
	Line   uint32
	Column uint32
}

type cachePayload struct {
	Schema uint16
	Path   string
	Tokens []cachedToken
}

// OpenTokenCache initializes and returns a token cache at the standard
// location (XDG_CACHE_HOME or ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache initializes a token cache rooted at dir.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	// Subdirectory "tokens" keeps the cache easy to inspect and clear.
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a token stream to the disk cache. The write is
// atomic: a temp file followed by rename.
func (c *TokenCache) Put(key [32]byte, path string, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := cachePayload{
		Schema: tokenCacheSchemaVersion,
		Path:   path,
		Tokens: make([]cachedToken, len(tokens)),
	}
	for i, t := range tokens {
		payload.Tokens[i] = cachedToken{
			Kind:   uint8(t.Kind),
			Raw:    t.Raw,
			Line:   t.Line,
			Column: t.Column,
		}
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached token stream. A miss, a corrupt entry, or a schema
// mismatch all return ok=false; only unexpected I/O failures return an error.
func (c *TokenCache) Get(key [32]byte) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, nil
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, t := range payload.Tokens {
		tokens[i] = token.Token{
			Kind:   token.Kind(t.Kind),
			Raw:    t.Raw,
			Line:   t.Line,
			Column: t.Column,
		}
	}
	return tokens, true, nil
}
