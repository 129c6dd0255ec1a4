// Package localstore provides the offline persistence path: a flat
// JSON key-value blob on disk, with a match CRUD surface mirroring the
// REST client so the two are interchangeable behind one abstraction.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys shared with the session store.
const (
	TokenKey   = "matchboard.token"
	UserKey    = "matchboard.user"
	MatchesKey = "matchboard.matches"
)

// KV is a durable flat key-value blob backed by a single JSON file.
// A missing or corrupt file is treated as an empty blob.
type KV struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenKV loads (or lazily creates) the blob at path.
func OpenKV(path string) *KV {
	kv := &KV{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		return kv
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// Corrupt blob: recover to empty rather than failing the caller.
		kv.data = map[string]json.RawMessage{}
	}
	return kv
}

// Get decodes the value stored under key into v. It reports false when
// the key is absent or the stored value does not decode.
func (kv *KV) Get(key string, v interface{}) bool {
	kv.mu.Lock()
	raw, ok := kv.data[key]
	kv.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// Put stores v under key and flushes the blob to disk.
func (kv *KV) Put(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = raw
	return kv.flushLocked()
}

// Delete removes key and flushes the blob to disk.
func (kv *KV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return kv.flushLocked()
}

// flushLocked writes the blob atomically via a temp file rename.
func (kv *KV) flushLocked() error {
	raw, err := json.Marshal(kv.data)
	if err != nil {
		return err
	}

	dir := filepath.Dir(kv.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".kv-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), kv.path)
}
