// Package catalog holds the server-authoritative menu. It is the only
// source of item prices; nothing a client sends can override it.
package catalog

import "bunueleria-system/internal/domain"

var menuItems = []domain.MenuItem{
	{
		ID:          "bunuelo-clasico",
		Name:        "Buñuelo Clásico",
		Description: "Buñuelo tradicional con miel, receta original de la abuela",
		Price:       1500,
		Category:    domain.CategoryTraditional,
	},
	{
		ID:          "bunuelo-azucar",
		Name:        "Buñuelo con Azúcar",
		Description: "Buñuelo espolvoreado con azúcar refinada",
		Price:       2000,
		Category:    domain.CategoryTraditional,
	},
	{
		ID:          "bunuelo-queso",
		Name:        "Buñuelo de Queso Mozarella",
		Description: "Buñuelo relleno de queso mozarella derretido",
		Price:       2500,
		Category:    domain.CategoryTraditional,
	},
	{
		ID:          "bunuelo-hawaiano",
		Name:        "Buñuelo Hawaiano",
		Description: "Buñuelo relleno de piña y queso, una combinación tropical",
		Price:       3000,
		Category:    domain.CategorySpecial,
	},
	{
		ID:          "bunuelo-ranchero",
		Name:        "Buñuelo Ranchero",
		Description: "Buñuelo relleno de salchicha y queso, sabor tradicional",
		Price:       3000,
		Category:    domain.CategorySpecial,
	},
	{
		ID:          "bunuelo-mermelada",
		Name:        "Buñuelo de Mermelada",
		Description: "Buñuelo relleno de mermelada de frutas",
		Price:       2000,
		Category:    domain.CategorySpecial,
	},
	{
		ID:          "bunuelo-bocadillo",
		Name:        "Buñuelo de Bocadillo",
		Description: "Buñuelo relleno de bocadillo de guayaba",
		Price:       2000,
		Category:    domain.CategorySpecial,
	},
	{
		ID:          "bunuelo-arequipe",
		Name:        "Buñuelo de Arequipe",
		Description: "Buñuelo relleno de arequipe casero",
		Price:       2000,
		Category:    domain.CategorySpecial,
	},
}

type Catalog struct {
	items  []domain.MenuItem
	lookup map[string]domain.MenuItem
}

// New returns the static catalog.
func New() *Catalog {
	c := &Catalog{items: menuItems, lookup: make(map[string]domain.MenuItem, len(menuItems))}
	for _, it := range c.items {
		c.lookup[it.ID] = it
	}
	return c
}

// Items returns the menu in display order.
func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the catalog entry for id.
func (c *Catalog) Lookup(id string) (domain.MenuItem, bool) {
	it, ok := c.lookup[id]
	return it, ok
}
