package tests

import (
	"github.com/piganiec/hardbistro-app/internal/storage"
)

// newSeededStore returns a fresh in-memory store loaded with the default
// menu: dish "1" Sałatka Cezar 20.00/50, dish "2" Zupa dnia - Żurek 5.00/30,
// dish "3" Kotlet schabowy z ziemniakami 18.50/15.
func newSeededStore() *storage.MemoryStore {
	store := storage.NewMemoryStore()
	store.Seed(storage.DefaultMenu())
	return store
}
