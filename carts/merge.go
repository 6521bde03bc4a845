package carts

// MergeSessionCart folds an anonymous session cart (product id → quantity)
// into the user's persisted lines. Quantities are additive: an existing line
// for the same product is incremented, not replaced. Entries whose product
// has been removed from the catalog are dropped without failing the merge.
//
// All writes commit as a single transaction. The caller clears the session
// cart only after this returns nil, so a failed merge leaves the session
// state intact and retryable.
func MergeSessionCart(store Store, userID uint, items map[uint]int) error {
	if len(items) == 0 {
		return nil
	}
	return store.Transact(func(tx Store) error {
		for productID, qty := range items {
			if qty <= 0 {
				continue
			}
			exists, err := tx.ProductExists(productID)
			if err != nil {
				return err
			}
			if !exists {
				continue
			}
			if err := tx.UpsertLine(userID, productID, qty); err != nil {
				return err
			}
		}
		return nil
	})
}
