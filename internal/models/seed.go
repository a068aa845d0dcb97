package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lithammer/shortuuid/v3"
)

// NewID generates a short opaque identifier for a line item. Collisions
// are immaterial at invoice sizes.
func NewID() string {
	return shortuuid.New()
}

// NewInvoiceNumber generates a fresh invoice number with a random
// four-digit suffix, e.g. "INV-4821". The number stays free-form and the
// user can overwrite it.
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%d", 1000+rand.IntN(9000))
}

// NewInvoice returns the seed aggregate used at process start: today's
// date, a randomized invoice number, the shop's default company details
// and terms, and a single photocopy row so the item list is never empty.
func NewInvoice() InvoiceData {
	return InvoiceData{
		Company: CompanyInfo{
			Name:    "আপনার কোম্পানির নাম",
			Address: "দোকান নং ১২, মেইন রোড, ঢাকা",
			Phone:   "০১৭০০-০০০০০০",
			Email:   "info@business.com",
		},
		InvoiceNumber: NewInvoiceNumber(),
		InvoiceDate:   time.Now().Format("2006-01-02"),
		Items: []LineItem{
			{ID: NewID(), Description: "ফটোকপি", Quantity: 1, UnitPrice: 3},
		},
		Terms:    "১. পন্য বুঝে নেওয়ার পর কোনো অভিযোগ গ্রহণ করা হবে না।\n২. অগ্রিম টাকা ফেরতযোগ্য নয়।",
		ShowLogo: true,
	}
}
