package inventory

import (
	"errors"
	"log"
	"net/http"

	"github.com/stockroom/service/internal/response"
)

// Handler holds HTTP handlers for inventory endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new inventory Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create godoc
//
//	@Summary		Create an inventory item
//	@Description	Creates an item from form fields and assigns it a unique id.
//	@Tags			items
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			name		formData	string	true	"display name"
//	@Param			description	formData	string	false	"free-text description"
//	@Param			category	formData	string	false	"free-text category"
//	@Param			image_url	formData	string	false	"relative URL of an uploaded image"
//	@Success		201	{object}	Item
//	@Failure		422	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/items [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	item := Item{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		ImageURL:    r.PostFormValue("image_url"),
	}

	created, err := h.svc.Create(r.Context(), item)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.UnprocessableEntity(w, "name is required")
			return
		}
		if h.svc.IsCorrupt(err) {
			response.Error(w, http.StatusInternalServerError, "inventory file is corrupt")
			return
		}
		log.Printf("create item: %v", err)
		response.InternalError(w)
		return
	}

	response.Created(w, created)
}

// List godoc
//
//	@Summary		List all inventory items
//	@Description	Returns every item in creation order; an empty store yields an empty array.
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		Item
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/items [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		if h.svc.IsCorrupt(err) {
			response.Error(w, http.StatusInternalServerError, "inventory file is corrupt")
			return
		}
		log.Printf("list items: %v", err)
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}
