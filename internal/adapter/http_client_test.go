package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/models"
)

// newTestClient returns a client pointed at a test server running handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *httpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)
	return c.(*httpClient)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://shop.example.com ", want: "https://shop.example.com"},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignup(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann", req.Username)

		writeJSON(w, http.StatusCreated, models.User{ID: "id-1", Username: req.Username})
	})

	user, err := c.Signup(context.Background(), models.SignupRequest{Name: "Ann", Username: "ann", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		message string
		wantErr error
	}{
		{http.StatusNotFound, "User not found", ErrNotFound},
		{http.StatusUnauthorized, "Incorrect password", ErrUnauthorized},
		{http.StatusBadRequest, "invalid data provided", ErrBadRequest},
		{http.StatusConflict, "Username already taken", ErrConflict},
		{http.StatusInternalServerError, "Internal Server Error", ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, models.ErrorResponse{Error: tt.message})
			})

			_, err := c.Login(context.Background(), models.LoginRequest{Username: "ann", Password: "p"})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := c.ListCards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestChangePassword_IDInPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/abc/update", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"password":"old","newPassword":"new"}`, string(body))

		writeJSON(w, http.StatusOK, models.UpdateResult{ID: "abc", Updated: true})
	})

	result, err := c.ChangePassword(context.Background(),
		models.ChangePasswordRequest{ID: "abc", Password: "old", NewPassword: "new"})
	require.NoError(t, err)
	assert.True(t, result.Updated)
}

func TestAddCard_Multipart(t *testing.T) {
	image := []byte("\x89PNG\r\n\x1a\n")

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Mug", r.FormValue("name"))
		assert.Equal(t, "9.5", r.FormValue("price"))
		assert.Equal(t, "3", r.FormValue("quantity"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, image, data)
		assert.Equal(t, "mug.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		writeJSON(w, http.StatusCreated, models.Card{ID: "card-1", Name: "Mug"})
	})

	card, err := c.AddCard(context.Background(), models.CardUpload{
		Name: "Mug", Description: "Blue", Price: 9.5, Quantity: 3, Image: image, ImageType: "image/png",
	}, "mug.png")
	require.NoError(t, err)
	assert.Equal(t, "card-1", card.ID)
}

func TestGreeting(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello World!"))
	})

	greeting, err := c.Greeting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", greeting)
}
