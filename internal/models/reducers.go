package models

// Edits are expressed as reducers: the current aggregate goes in by
// value, a complete new value comes out with exactly the touched path
// replaced. Nothing mutates the receiver, so whoever owns the canonical
// value can swap it wholesale and earlier copies stay intact.

// ItemPatch carries the editable fields of a line item. Nil fields are
// left unchanged; the row's ID is never part of a patch.
type ItemPatch struct {
	Description *string `json:"description"`
	Quantity    *Number `json:"quantity"`
	UnitPrice   *Number `json:"unitPrice"`
	Discount    *Number `json:"discount"`
}

// WithItemAdded appends a new row with a fresh ID, quantity 1 and no
// discount. Both description and price may be zero-valued for a blank
// manual add; quick-add shortcuts pass their label and price.
func (inv InvoiceData) WithItemAdded(description string, unitPrice float64) InvoiceData {
	out := inv.Clone()
	out.Items = append(out.Items, LineItem{
		ID:          NewID(),
		Description: description,
		Quantity:    1,
		UnitPrice:   Number(clampNumber(unitPrice)),
	})
	return out
}

// WithItemRemoved removes the row with the given ID. Removing the last
// remaining row is refused before any mutation: the item list must never
// become empty. An unknown ID is a no-op as well.
func (inv InvoiceData) WithItemRemoved(id string) InvoiceData {
	out := inv.Clone()
	if len(out.Items) <= 1 {
		return out
	}
	items := make([]LineItem, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	out.Items = items
	return out
}

// WithItemUpdated replaces only the row whose ID matches, leaving every
// other row identical in content and position. The matched row keeps its
// ID regardless of what the patch carries.
func (inv InvoiceData) WithItemUpdated(id string, patch ItemPatch) InvoiceData {
	out := inv.Clone()
	for i := range out.Items {
		if out.Items[i].ID != id {
			continue
		}
		item := &out.Items[i]
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Quantity != nil {
			item.Quantity = patch.Quantity.normalized()
		}
		if patch.UnitPrice != nil {
			item.UnitPrice = patch.UnitPrice.normalized()
		}
		if patch.Discount != nil {
			item.Discount = patch.Discount.normalized()
		}
		break
	}
	return out
}

// WithCompanyLogo replaces the company logo data URL. An empty string
// clears the logo.
func (inv InvoiceData) WithCompanyLogo(dataURL string) InvoiceData {
	out := inv.Clone()
	out.Company.Logo = dataURL
	return out
}

// WithSignature replaces the signature data URL. An empty string clears it.
func (inv InvoiceData) WithSignature(dataURL string) InvoiceData {
	out := inv.Clone()
	out.Signature = dataURL
	return out
}
