package carts

import (
	"errors"
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
)

// fakeStore backs the cart logic with maps. Transact snapshots the lines and
// restores them on failure, mimicking the transaction rollback the GORM store
// gets from Postgres.
type fakeStore struct {
	products map[uint]models.Product
	lines    map[uint]map[uint]int // userID -> productID -> qty

	commitErr error
	upsertErr error

	writes    int
	transacts int
}

func newFakeStore(products ...models.Product) *fakeStore {
	f := &fakeStore{
		products: map[uint]models.Product{},
		lines:    map[uint]map[uint]int{},
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeStore) snapshot() map[uint]map[uint]int {
	cp := make(map[uint]map[uint]int, len(f.lines))
	for user, items := range f.lines {
		inner := make(map[uint]int, len(items))
		for pid, qty := range items {
			inner[pid] = qty
		}
		cp[user] = inner
	}
	return cp
}

func (f *fakeStore) Transact(fn func(Store) error) error {
	f.transacts++
	before := f.snapshot()
	if err := fn(f); err != nil {
		f.lines = before
		return err
	}
	if f.commitErr != nil {
		f.lines = before
		return f.commitErr
	}
	return nil
}

func (f *fakeStore) ProductExists(productID uint) (bool, error) {
	_, ok := f.products[productID]
	return ok, nil
}

func (f *fakeStore) ProductsByID(ids []uint) (map[uint]models.Product, error) {
	out := map[uint]models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeStore) Line(userID, productID uint) (*models.CartItem, error) {
	qty, ok := f.lines[userID][productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	item := f.item(userID, productID, qty)
	return &item, nil
}

func (f *fakeStore) Lines(userID uint) ([]models.CartItem, error) {
	ids := make([]uint, 0, len(f.lines[userID]))
	for pid := range f.lines[userID] {
		ids = append(ids, pid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]models.CartItem, 0, len(ids))
	for _, pid := range ids {
		items = append(items, f.item(userID, pid, f.lines[userID][pid]))
	}
	return items, nil
}

// item mirrors the GORM store's Product preload: a deleted product leaves the
// association zero-valued.
func (f *fakeStore) item(userID, productID uint, qty int) models.CartItem {
	return models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		Product:   f.products[productID],
		AddedAt:   time.Now(),
	}
}

func (f *fakeStore) UpsertLine(userID, productID uint, quantityDelta int) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.writes++
	if f.lines[userID] == nil {
		f.lines[userID] = map[uint]int{}
	}
	f.lines[userID][productID] += quantityDelta
	return nil
}

func (f *fakeStore) DeleteLine(userID, productID uint) error {
	if _, ok := f.lines[userID][productID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.writes++
	delete(f.lines[userID], productID)
	return nil
}

func (f *fakeStore) ClearLines(userID uint) error {
	f.writes++
	delete(f.lines, userID)
	return nil
}

const userID = uint(7)

func TestMergeIntoEmptyCart(t *testing.T) {
	store := newFakeStore(
		models.Product{ID: 1, Title: "Zapato A", PriceCents: 5000},
		models.Product{ID: 2, Title: "Zapato B", PriceCents: 9000},
	)

	err := MergeSessionCart(store, userID, map[uint]int{1: 2, 2: 1})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := map[uint]int{1: 2, 2: 1}
	if got := store.lines[userID]; !mapsEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
}

func TestMergeIsAdditive(t *testing.T) {
	store := newFakeStore(models.Product{ID: 1, Title: "Zapato A", PriceCents: 5000})
	store.lines[userID] = map[uint]int{1: 3}

	if err := MergeSessionCart(store, userID, map[uint]int{1: 2}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := store.lines[userID][1]; got != 5 {
		t.Fatalf("quantity = %d, want 5 (3 existing + 2 merged)", got)
	}
}

func TestMergeDropsDeletedProducts(t *testing.T) {
	store := newFakeStore(models.Product{ID: 1, Title: "Zapato A", PriceCents: 5000})

	// Product 99 was deleted from the catalog after it entered the
	// session cart.
	err := MergeSessionCart(store, userID, map[uint]int{1: 2, 99: 4})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := map[uint]int{1: 2}
	if got := store.lines[userID]; !mapsEqual(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
}

func TestMergeEmptySessionCartWritesNothing(t *testing.T) {
	store := newFakeStore(models.Product{ID: 1})

	if err := MergeSessionCart(store, userID, nil); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if err := MergeSessionCart(store, userID, map[uint]int{}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if store.writes != 0 || store.transacts != 0 {
		t.Fatalf("writes = %d, transacts = %d, want 0 of each", store.writes, store.transacts)
	}
}

func TestMergeCommitFailureRollsBack(t *testing.T) {
	store := newFakeStore(models.Product{ID: 1, Title: "Zapato A"})
	store.lines[userID] = map[uint]int{1: 3}
	store.commitErr = errors.New("commit failed")

	err := MergeSessionCart(store, userID, map[uint]int{1: 2})
	if err == nil {
		t.Fatal("expected commit error to surface")
	}
	if got := store.lines[userID][1]; got != 3 {
		t.Fatalf("quantity = %d, want untouched 3 after rollback", got)
	}
}

func TestMergeUpsertFailureRollsBack(t *testing.T) {
	store := newFakeStore(
		models.Product{ID: 1, Title: "Zapato A"},
		models.Product{ID: 2, Title: "Zapato B"},
	)
	store.upsertErr = errors.New("insert failed")

	err := MergeSessionCart(store, userID, map[uint]int{1: 2, 2: 1})
	if err == nil {
		t.Fatal("expected upsert error to surface")
	}
	if len(store.lines[userID]) != 0 {
		t.Fatalf("lines = %v, want none after rollback", store.lines[userID])
	}
}

func mapsEqual(a, b map[uint]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
