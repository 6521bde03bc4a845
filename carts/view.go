package carts

import (
	"sort"

	"github.com/ING-JUAN-GAVIRIA/Tienda-Zapatos/models"
)

type ViewLine struct {
	Product       models.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	SubtotalCents int64          `json:"subtotal_cents"`
}

type View struct {
	Lines      []ViewLine `json:"items"`
	TotalCents int64      `json:"total_cents"`
}

// ViewForUser builds the cart page data from the persisted lines. Lines whose
// product has disappeared since they were added are skipped, not priced at
// zero.
func ViewForUser(store Store, userID uint) (View, error) {
	items, err := store.Lines(userID)
	if err != nil {
		return View{}, err
	}
	view := View{Lines: []ViewLine{}}
	for _, item := range items {
		if item.Product.ID == 0 {
			continue
		}
		subtotal := int64(item.Quantity) * item.Product.PriceCents
		view.Lines = append(view.Lines, ViewLine{
			Product:       item.Product,
			Quantity:      item.Quantity,
			SubtotalCents: subtotal,
		})
		view.TotalCents += subtotal
	}
	return view, nil
}

// ViewForSession resolves an anonymous session cart against the live catalog.
// Entries pointing at products that no longer exist are left out of the
// totals.
func ViewForSession(store Store, items map[uint]int) (View, error) {
	view := View{Lines: []ViewLine{}}
	if len(items) == 0 {
		return view, nil
	}
	ids := make([]uint, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	products, err := store.ProductsByID(ids)
	if err != nil {
		return View{}, err
	}
	for _, id := range ids {
		product, ok := products[id]
		qty := items[id]
		if !ok || qty <= 0 {
			continue
		}
		subtotal := int64(qty) * product.PriceCents
		view.Lines = append(view.Lines, ViewLine{
			Product:       product,
			Quantity:      qty,
			SubtotalCents: subtotal,
		})
		view.TotalCents += subtotal
	}
	return view, nil
}
