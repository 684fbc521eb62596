package image

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockroom/service/internal/response"
	"github.com/stockroom/service/internal/storage"
	"github.com/stockroom/service/internal/urls"
)

// UploadResponse is returned after a successful upload. FullURL is the
// externally reachable address of the image; ImageURL is server-relative.
type UploadResponse struct {
	ImageURL string `json:"image_url"`
	FullURL  string `json:"full_url"`
}

// Handler holds HTTP handlers for image endpoints.
type Handler struct {
	svc      *Service
	resolver *urls.Resolver
}

// NewHandler creates a new image Handler.
func NewHandler(svc *Service, resolver *urls.Resolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Accepts a PNG, JPEG, or GIF file and stores it under a unique name.
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"image file"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/images [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	imageURL, err := h.svc.Save(r.Context(), header.Filename,
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrMissingFileName) {
			response.BadRequest(w, err.Error())
			return
		}
		log.Printf("upload image: %v", err)
		response.InternalError(w)
		return
	}

	response.OK(w, UploadResponse{
		ImageURL: imageURL,
		FullURL:  h.resolver.Resolve(imageURL),
	})
}

// Fetch godoc
//
//	@Summary		Fetch a stored image
//	@Description	Streams the image bytes with the content type derived from the file extension.
//	@Tags			images
//	@Produce		image/png
//	@Param			name	path	string	true	"generated image name"
//	@Success		200		{file}	binary
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/images/{name} [get]
func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, contentType, err := h.svc.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "image not found")
			return
		}
		log.Printf("fetch image %q: %v", name, err)
		response.InternalError(w)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("stream image %q: %v", name, err)
	}
}
