package models

// LineItem is one billable row of an invoice: a quantity of a good or
// service at a unit price, with an optional flat discount taken off this
// row only. The ID is an opaque identifier used for matching and removal;
// it is never displayed.
type LineItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitPrice   Number `json:"unitPrice"`
	Discount    Number `json:"discount,omitempty"`
}

// Total calculates the effective row total: quantity × unit price minus
// the row discount, floored at zero. An absent discount counts as zero.
// No rounding is applied here; full precision is carried forward.
func (item LineItem) Total() float64 {
	total := float64(item.Quantity)*float64(item.UnitPrice) - float64(item.Discount)
	if total < 0 {
		return 0
	}
	return total
}

// CompanyInfo identifies the issuer of the invoice.
type CompanyInfo struct {
	Logo    string `json:"logo,omitempty"`
	Name    string `json:"name"`
	Owner   string `json:"owner,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerInfo identifies the payee. One customer per invoice, no ID.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
}

// InvoiceData is the root aggregate the whole builder works on. Item order
// is significant: it determines the displayed row numbering. Discount is a
// flat document-level deduction applied once, after per-row discounts are
// already reflected in each row total.
type InvoiceData struct {
	Company       CompanyInfo  `json:"company"`
	Customer      CustomerInfo `json:"customer"`
	InvoiceNumber string       `json:"invoiceNumber"`
	InvoiceDate   string       `json:"invoiceDate"`
	Items         []LineItem   `json:"items"`
	Discount      Number       `json:"discount"`
	Terms         string       `json:"terms"`
	Signature     string       `json:"signature,omitempty"`
	ShowLogo      bool         `json:"showLogo"`
}

// Subtotal sums every row's effective total, in row order.
func (inv InvoiceData) Subtotal() float64 {
	var total float64
	for _, item := range inv.Items {
		total += item.Total()
	}
	return total
}

// GrandTotal is the amount due: subtotal minus the document-level
// discount, floored at zero.
func (inv InvoiceData) GrandTotal() float64 {
	total := inv.Subtotal() - float64(inv.Discount)
	if total < 0 {
		return 0
	}
	return total
}

// HasItem reports whether a row with the given ID exists.
func (inv InvoiceData) HasItem(id string) bool {
	for _, item := range inv.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a structural copy whose Items slice shares no backing
// array with the receiver, so callers can hand copies out without
// aliasing the canonical value.
func (inv InvoiceData) Clone() InvoiceData {
	out := inv
	if inv.Items != nil {
		out.Items = append([]LineItem(nil), inv.Items...)
	}
	return out
}

// Normalize returns a copy with every numeric field coerced through the
// same policy as form input (non-finite or negative becomes 0) and a
// fresh ID assigned to any row that arrived without one.
func (inv InvoiceData) Normalize() InvoiceData {
	out := inv.Clone()
	out.Discount = out.Discount.normalized()
	for i := range out.Items {
		item := &out.Items[i]
		item.Quantity = item.Quantity.normalized()
		item.UnitPrice = item.UnitPrice.normalized()
		item.Discount = item.Discount.normalized()
		if item.ID == "" {
			item.ID = NewID()
		}
	}
	return out
}
