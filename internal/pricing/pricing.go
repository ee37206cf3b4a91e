// Package pricing revalidates customer carts against the trusted catalog.
// It is a pure function over its inputs: no store is touched, and the first
// failing line aborts the whole cart.
package pricing

import "bunueleria-system/internal/domain"

// Menu is the catalog lookup capability the pricer needs.
type Menu interface {
	Lookup(id string) (domain.MenuItem, bool)
}

// Result is the atomic outcome of a successful validation.
type Result struct {
	Lines     []domain.OrderLine
	Total     int64
	QueueType domain.QueueType
}

// PriceCart validates each cart line in input order, prices it from the
// catalog (client-supplied prices are never consulted), and classifies the
// order into a queue. Totals use exact integer arithmetic.
func PriceCart(menu Menu, cart []domain.CartLine) (Result, error) {
	lines := make([]domain.OrderLine, 0, len(cart))
	var total int64

	for _, cl := range cart {
		item, ok := menu.Lookup(cl.ID)
		if !ok {
			return Result{}, domain.UnknownItemError{ItemID: cl.ID}
		}
		if cl.Quantity < 1 {
			return Result{}, domain.InvalidQuantityError{ItemID: cl.ID}
		}

		lines = append(lines, domain.OrderLine{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: cl.Quantity,
			Category: item.Category,
		})
		total += item.Price * int64(cl.Quantity)
	}

	return Result{Lines: lines, Total: total, QueueType: classify(lines)}, nil
}

// classify derives the queue bucket from the categories present.
func classify(lines []domain.OrderLine) domain.QueueType {
	var hasTraditional, hasSpecial bool
	for _, ln := range lines {
		switch ln.Category {
		case domain.CategoryTraditional:
			hasTraditional = true
		case domain.CategorySpecial:
			hasSpecial = true
		}
	}
	switch {
	case hasTraditional && hasSpecial:
		return domain.QueueMixtos
	case hasSpecial:
		return domain.QueueEspeciales
	default:
		return domain.QueueTradicionales
	}
}
