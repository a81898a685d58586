package pet

import "math"

// ProductKind is the tagged variant over purchasable products.
type ProductKind int

const (
	ProductBeer ProductKind = iota
	ProductCigarettes
	ProductInstructions
	ProductPurse
	ProductSword
	ProductShield
	ProductVision
	ProductBrain
	ProductReach
	ProductAcid
	ProductProperty
	ProductFreedom
)

// ParseProductID maps a catalog product id to its kind.
func ParseProductID(id string) (ProductKind, bool) {
	switch id {
	case "product_beer":
		return ProductBeer, true
	case "product_cigarettes":
		return ProductCigarettes, true
	case "product_instructions":
		return ProductInstructions, true
	case "product_purse":
		return ProductPurse, true
	case "product_sword":
		return ProductSword, true
	case "product_shield":
		return ProductShield, true
	case "product_vision":
		return ProductVision, true
	case "product_brain":
		return ProductBrain, true
	case "product_reach":
		return ProductReach, true
	case "product_acid":
		return ProductAcid, true
	case "product_property":
		return ProductProperty, true
	case "product_freedom":
		return ProductFreedom, true
	}
	return 0, false
}

// Purchase validates and applies the purchase of the product with the given
// catalog id. Purchases share the full-Vigor gate with actions; validation
// runs before any mutation, so a refused purchase spends nothing.
func (e *Engine) Purchase(productID string) Result {
	if e.state == Dead {
		return Result{Status: StatusDead}
	}

	kind, ok := ParseProductID(productID)
	if !ok {
		return Result{Status: StatusUnknown}
	}
	def, ok := e.cat.Product(productID)
	if !ok {
		return Result{Status: StatusUnknown}
	}

	p := &e.player
	if p.Vigor < 1 {
		return Result{Status: StatusNotReady}
	}
	if !e.canPurchase(kind, def.Price) {
		return Result{Status: StatusRefused}
	}

	p.Vigor = 0
	p.Money -= def.Price
	e.applyPurchase(kind)
	return Result{Status: StatusOK}
}

// CanPurchase reports whether the product with the given catalog id would be
// accepted right now, ignoring the Vigor gate. Used by the platform to dim
// shop entries.
func (e *Engine) CanPurchase(productID string) bool {
	if e.state == Dead {
		return false
	}
	kind, ok := ParseProductID(productID)
	if !ok {
		return false
	}
	def, ok := e.cat.Product(productID)
	if !ok {
		return false
	}
	return e.canPurchase(kind, def.Price)
}

// canPurchase implements the affordability rule.
//
// Freedom is an exact-balance puzzle: purchasable only when money sits
// within a tight epsilon of the configured target, not a >= comparison.
// Everything else needs the funds, must not already be owned (consumables
// excepted), and the street goods additionally need a purse to carry them.
func (e *Engine) canPurchase(kind ProductKind, price float64) bool {
	p := &e.player

	if kind == ProductFreedom {
		return math.Abs(p.Money-e.cfg.Economy.FreedomTarget) < e.cfg.Economy.FreedomEpsilon
	}

	if p.Money < price {
		return false
	}
	if e.ownedNonConsumable(kind) {
		return false
	}
	if purseGated(kind) && !p.OwnsPurse {
		return false
	}
	return true
}

// purseGated reports whether the product requires an owned purse.
func purseGated(kind ProductKind) bool {
	switch kind {
	case ProductBeer, ProductCigarettes, ProductSword, ProductShield:
		return true
	}
	return false
}

// ownedNonConsumable reports whether a non-consumable product is already
// owned. Beer and cigarettes restock on repeat purchase and always return
// false.
func (e *Engine) ownedNonConsumable(kind ProductKind) bool {
	p := &e.player
	switch kind {
	case ProductBeer, ProductCigarettes:
		return false
	case ProductInstructions:
		return p.OwnsInstructions
	case ProductPurse:
		return p.OwnsPurse
	case ProductSword:
		return p.OwnsSword
	case ProductShield:
		return p.OwnsShield
	case ProductVision:
		return p.OwnsVision
	case ProductBrain:
		return p.OwnsMemory
	case ProductReach:
		return p.OwnsReach
	case ProductAcid:
		return p.OwnsStomach
	case ProductProperty:
		return p.OwnsHouse
	case ProductFreedom:
		return false
	}
	return false
}

// applyPurchase applies the product's effect. The price has already been
// deducted.
func (e *Engine) applyPurchase(kind ProductKind) {
	p := &e.player
	switch kind {
	case ProductBeer:
		p.Beers++
	case ProductCigarettes:
		p.Cigarettes++
	case ProductInstructions:
		p.OwnsInstructions = true
	case ProductPurse:
		p.OwnsPurse = true
	case ProductSword:
		// Gear auto-equips on purchase.
		p.OwnsSword = true
		p.SwordEquipped = true
	case ProductShield:
		p.OwnsShield = true
		p.ShieldEquipped = true
	case ProductVision:
		p.OwnsVision = true
	case ProductBrain:
		p.OwnsMemory = true
	case ProductReach:
		p.OwnsReach = true
	case ProductAcid:
		p.OwnsStomach = true
	case ProductProperty:
		p.OwnsHouse = true
	case ProductFreedom:
		// Freedom has no flag to set; the purchase itself (spending the
		// exact balance) is the point.
	}
}
