package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/smartprint/go-invoice/internal/catalog"
	"github.com/smartprint/go-invoice/internal/currency"
	"github.com/smartprint/go-invoice/internal/httpx"
	"github.com/smartprint/go-invoice/internal/images"
	"github.com/smartprint/go-invoice/internal/logger"
	"github.com/smartprint/go-invoice/internal/models"
	"github.com/smartprint/go-invoice/internal/state"
	"github.com/smartprint/go-invoice/internal/validation"
)

// InvoiceHandler is the boundary the presentation layer talks to: it
// reads the current aggregate in full, writes complete replacements, and
// serves the derived display values.
type InvoiceHandler struct {
	store   *state.Store
	catalog catalog.Catalog
	loader  *images.Loader
	format  *currency.Formatter
	log     zerolog.Logger
}

func NewInvoiceHandler(store *state.Store, cat catalog.Catalog, format *currency.Formatter) *InvoiceHandler {
	return &InvoiceHandler{
		store:   store,
		catalog: cat,
		loader:  images.NewLoader(store),
		format:  format,
		log:     logger.WithComponent("invoice"),
	}
}

// Register wires all invoice routes onto the mux.
func (h *InvoiceHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /invoice", h.Get)
	mux.HandleFunc("PUT /invoice", h.Replace)
	mux.HandleFunc("POST /invoice/items", h.AddItem)
	mux.HandleFunc("PATCH /invoice/items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /invoice/items/{id}", h.RemoveItem)
	mux.HandleFunc("GET /invoice/totals", h.Totals)
	mux.HandleFunc("POST /invoice/logo", h.UploadLogo)
	mux.HandleFunc("DELETE /invoice/logo", h.ClearLogo)
	mux.HandleFunc("POST /invoice/signature", h.UploadSignature)
	mux.HandleFunc("DELETE /invoice/signature", h.ClearSignature)
	mux.HandleFunc("GET /catalog", h.Catalog)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Current())
}

// Replace is the single write entry point for whole-aggregate edits: the
// client sends a complete new value and it becomes canonical as-is, after
// numeric normalization.
func (h *InvoiceHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var next models.InvoiceData
	if err := httpx.Decode(r, &next); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	v := make(validation.Violations)
	validation.NotEmpty("items", len(next.Items), v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_invoice", v)
		return
	}

	stored, err := h.store.Replace(next)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_invoice", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, stored)
}

type addItemRequest struct {
	Description string        `json:"description"`
	UnitPrice   models.Number `json:"unitPrice"`
	Service     string        `json:"service"`
}

// AddItem appends a row. With a service label the description and price
// come from the quick-add catalog; otherwise description and unitPrice
// are taken as given, both defaulting to blank/zero for a manual add.
func (h *InvoiceHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	description, price := req.Description, float64(req.UnitPrice)
	if req.Service != "" {
		svc, ok := h.catalog.Find(req.Service)
		if !ok {
			httpx.JSONError(w, http.StatusNotFound, "unknown_service", req.Service)
			return
		}
		description, price = svc.Label, svc.Price
	}

	next := h.store.Update(func(inv models.InvoiceData) models.InvoiceData {
		return inv.WithItemAdded(description, price)
	})
	httpx.JSON(w, http.StatusCreated, next)
}

func (h *InvoiceHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch models.ItemPatch
	if err := httpx.Decode(r, &patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	var found bool
	next := h.store.Update(func(inv models.InvoiceData) models.InvoiceData {
		found = inv.HasItem(id)
		if !found {
			return inv
		}
		return inv.WithItemUpdated(id, patch)
	})
	if !found {
		httpx.JSONError(w, http.StatusNotFound, "item_not_found", id)
		return
	}
	httpx.JSON(w, http.StatusOK, next)
}

// RemoveItem deletes a row by ID. Removing the last remaining row (or an
// unknown ID) is silently ignored: the response is the unchanged state,
// not an error.
func (h *InvoiceHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	next := h.store.Update(func(inv models.InvoiceData) models.InvoiceData {
		return inv.WithItemRemoved(id)
	})
	httpx.JSON(w, http.StatusOK, next)
}

type lineTotal struct {
	ID        string  `json:"id"`
	Total     float64 `json:"total"`
	Formatted string  `json:"formatted"`
}

type totalsResponse struct {
	Lines               []lineTotal `json:"lines"`
	Subtotal            float64     `json:"subtotal"`
	SubtotalFormatted   string      `json:"subtotalFormatted"`
	Discount            float64     `json:"discount"`
	GrandTotal          float64     `json:"grandTotal"`
	GrandTotalFormatted string      `json:"grandTotalFormatted"`
}

func (h *InvoiceHandler) Totals(w http.ResponseWriter, r *http.Request) {
	inv := h.store.Current()
	resp := totalsResponse{
		Lines:      make([]lineTotal, 0, len(inv.Items)),
		Subtotal:   inv.Subtotal(),
		Discount:   float64(inv.Discount),
		GrandTotal: inv.GrandTotal(),
	}
	for _, item := range inv.Items {
		total := item.Total()
		resp.Lines = append(resp.Lines, lineTotal{
			ID:        item.ID,
			Total:     total,
			Formatted: h.format.Format(total),
		})
	}
	resp.SubtotalFormatted = h.format.Format(resp.Subtotal)
	resp.GrandTotalFormatted = h.format.Format(resp.GrandTotal)
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *InvoiceHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, images.FieldLogo)
}

func (h *InvoiceHandler) UploadSignature(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, images.FieldSignature)
}

func (h *InvoiceHandler) upload(w http.ResponseWriter, r *http.Request, field images.Field) {
	if err := r.ParseMultipartForm(images.MaxUploadSize); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "missing_file", nil)
		return
	}
	defer file.Close()

	switch err := <-h.loader.Start(field, file); {
	case errors.Is(err, images.ErrNotImage), errors.Is(err, images.ErrTooLarge):
		h.log.Warn().Err(err).Int("field", int(field)).Msg("upload rejected")
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_image", err.Error())
		return
	case errors.Is(err, images.ErrSuperseded):
		httpx.JSONError(w, http.StatusConflict, "upload_superseded", nil)
		return
	case err != nil:
		h.log.Error().Err(err).Msg("upload failed")
		httpx.JSONError(w, http.StatusInternalServerError, "upload_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, h.store.Current())
}

func (h *InvoiceHandler) ClearLogo(w http.ResponseWriter, r *http.Request) {
	next := h.store.Update(func(inv models.InvoiceData) models.InvoiceData {
		return inv.WithCompanyLogo("")
	})
	httpx.JSON(w, http.StatusOK, next)
}

func (h *InvoiceHandler) ClearSignature(w http.ResponseWriter, r *http.Request) {
	next := h.store.Update(func(inv models.InvoiceData) models.InvoiceData {
		return inv.WithSignature("")
	})
	httpx.JSON(w, http.StatusOK, next)
}

// Catalog serves the quick-add shortcut list.
func (h *InvoiceHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.catalog)
}
