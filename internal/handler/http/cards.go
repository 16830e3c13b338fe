package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const (
	cardNotFound   = "Card not found"
	imageFormField = "image"
)

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.CardService.ListCards(r.Context())
	if err != nil {
		writeError(w, r, err, cardNotFound)
		return
	}

	utils.WriteJSON(w, cards, http.StatusOK)
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.services.CardService.GetCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, cardNotFound)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

// addCard accepts a multipart form with the card fields and the picture in
// the "image" file part.
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	upload, err := readCardUpload(r)
	if err != nil {
		writeError(w, r, err, cardNotFound)
		return
	}

	card, err := h.services.CardService.AddCard(r.Context(), upload)
	if err != nil {
		writeError(w, r, err, cardNotFound)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CardService.DeleteCard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, cardNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("card_id", result.ID).Msg("card deleted")
	utils.WriteJSON(w, result, http.StatusOK)
}

func readCardUpload(r *http.Request) (models.CardUpload, error) {
	var upload models.CardUpload

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return upload, uploadError(err)
	}
	if err := formDecoder.Decode(&upload, r.MultipartForm.Value); err != nil {
		return upload, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return upload, ErrMissingImage
	}
	if err != nil {
		return upload, uploadError(err)
	}
	defer file.Close()

	upload.Image, err = io.ReadAll(file)
	if err != nil {
		return upload, uploadError(err)
	}
	upload.ImageType = header.Header.Get("Content-Type")

	return upload, nil
}

func uploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidBody, err)
}
