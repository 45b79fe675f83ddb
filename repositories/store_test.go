package repositories_test

import (
	"encoding/json"
	"testing"
)

// memStore is an in-memory RecordStore double.
type memStore struct {
	records map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]byte{}}
}

func (m *memStore) Load(key string) ([]byte, bool) {
	data, ok := m.records[key]
	return data, ok
}

func (m *memStore) Save(key string, data []byte) error {
	m.records[key] = data
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.records, key)
	return nil
}

func putJSON(t *testing.T, store *memStore, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", key, err)
	}
	store.records[key] = data
}
