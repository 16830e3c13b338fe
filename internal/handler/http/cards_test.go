package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

var mug = models.Card{
	ID:          testID,
	Name:        "Mug",
	Description: "Blue mug",
	Image:       "data:image/png;base64,AAAA",
	Price:       9.5,
	Quantity:    3,
}

// multipartBody builds a card upload form. The image part is omitted when
// image is nil.
func multipartBody(t *testing.T, fields map[string]string, image []byte, imageType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="mug.png"`)
		if imageType != "" {
			header.Set("Content-Type", imageType)
		}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postCard(router http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/cards/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddCard(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.cards.EXPECT().AddCard(gomock.Any(), models.CardUpload{
		Name:        "Mug",
		Description: "Blue mug",
		Price:       9.5,
		Quantity:    3,
		Image:       pngBytes,
		ImageType:   "image/png",
	}).Return(mug, nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Mug",
		"description": "Blue mug",
		"price":       "9.5",
		"quantity":    "3",
	}, pngBytes, "image/png")

	rec := postCard(router, body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code)
	var card models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, mug.ID, card.ID)
	assert.Equal(t, mug.Image, card.Image)
}

func TestAddCard_Rejected(t *testing.T) {
	fields := map[string]string{"name": "Mug", "description": "Blue mug", "price": "9.5", "quantity": "3"}

	t.Run("no image part", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, fields, nil, "")

		rec := postCard(router, body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "image file is required", errorMessage(t, rec))
	})

	t.Run("price is not a number", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body, contentType := multipartBody(t, map[string]string{"name": "Mug", "price": "cheap"}, pngBytes, "image/png")

		rec := postCard(router, body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := serve(router, http.MethodPost, "/cards/add", `{"name":"Mug"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.cards.EXPECT().AddCard(gomock.Any(), gomock.Any()).
			Return(models.Card{}, fmt.Errorf("%w: name", service.ErrInvalidDataProvided))
		body, contentType := multipartBody(t, map[string]string{"description": "d"}, pngBytes, "")

		rec := postCard(router, body, contentType)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid data provided: name", errorMessage(t, rec))
	})
}

func TestAddCard_UploadTooLarge(t *testing.T) {
	cards := mock.NewMockCardService(gomock.NewController(t))
	h := NewHandler(&service.Services{CardService: cards}, config.Server{MaxUploadSize: 1024}, logger.Nop())
	router := h.Init()

	body, contentType := multipartBody(t, map[string]string{"name": "Mug", "description": "Blue mug"},
		bytes.Repeat([]byte{0xAB}, 4096), "image/png")

	rec := postCard(router, body, contentType)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "upload is too large")
}

func TestNewHandler_DefaultUploadLimit(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	assert.Equal(t, int64(defaultMaxUploadSize), h.maxUploadSize)

	h = NewHandler(&service.Services{}, config.Server{MaxUploadSize: 2048}, logger.Nop())
	assert.Equal(t, int64(2048), h.maxUploadSize)
}

func TestListCards(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.cards.EXPECT().ListCards(gomock.Any()).Return([]models.Card{mug}, nil)

	rec := serve(router, http.MethodGet, "/cards", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var cards []models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Equal(t, []string{testID}, []string{cards[0].ID})
}

func TestGetCard(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.cards.EXPECT().GetCard(gomock.Any(), testID).Return(mug, nil)

		rec := serve(router, http.MethodGet, "/cards/"+testID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Mug"`)
	})

	t.Run("not found", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.cards.EXPECT().GetCard(gomock.Any(), "missing").
			Return(models.Card{}, fmt.Errorf("card search by id failed: %w", store.ErrNotFound))

		rec := serve(router, http.MethodGet, "/cards/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Card not found", errorMessage(t, rec))
	})
}

func TestDeleteCard(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.cards.EXPECT().DeleteCard(gomock.Any(), testID).
			Return(models.DeleteResult{ID: testID, Deleted: true}, nil)

		rec := serve(router, http.MethodDelete, "/cards/"+testID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"_id":"`+testID+`","deleted":true}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.cards.EXPECT().DeleteCard(gomock.Any(), testID).
			Return(models.DeleteResult{}, store.ErrNotFound)

		rec := serve(router, http.MethodDelete, "/cards/"+testID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Card not found", errorMessage(t, rec))
	})
}
