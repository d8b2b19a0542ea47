package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"fioparser/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, AccessToken: "secret", PageLimit: 2}, nil, nil)
	require.NoError(t, err)
	return c
}

func writePage(w http.ResponseWriter, contacts []apiContact, next bool) {
	var p contactsPage
	p.Embedded.Contacts = contacts
	if next {
		p.Links.Next = &apiLink{Href: "https://example.amocrm.ru/api/v4/contacts?page=next"}
	}
	w.Header().Set("Content-Type", "application/hal+json")
	_ = json.NewEncoder(w).Encode(p)
}

func TestConfig_Endpoint(t *testing.T) {
	assert.Equal(t, "https://example.amocrm.ru", Config{Domain: "example"}.Endpoint())
	assert.Equal(t, "https://example.kommo.com", Config{Domain: "example.kommo.com"}.Endpoint())
	assert.Equal(t, "http://localhost:8080", Config{Domain: "x", BaseURL: "http://localhost:8080/"}.Endpoint())
	assert.Equal(t, "", Config{}.Endpoint())

	_, err := NewClient(Config{}, nil, nil)
	assert.Error(t, err)
}

func TestClient_ListContacts(t *testing.T) {
	since := time.Unix(1700000000, 0)
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v4/contacts", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "1700000000", q.Get("filter[created_at][from]"))
		assert.Equal(t, "created_at", q.Get("order"))
		assert.Equal(t, "2", q.Get("limit"))

		switch q.Get("page") {
		case "1":
			writePage(w, []apiContact{
				{ID: 1, Name: "Иванов Петр", FirstName: "", LastName: ""},
				{ID: 2, Name: "Анна", FirstName: "Анна"},
			}, true)
		case "2":
			writePage(w, []apiContact{{ID: 3, Name: "Сидоров", LastName: "Сидоров"}}, false)
		default:
			t.Errorf("unexpected page %q", q.Get("page"))
		}
	})

	contacts, err := c.ListContacts(context.Background(), since)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []reconcile.Contact{
		{ID: 1, Name: "Иванов Петр"},
		{ID: 2, Name: "Анна", FirstName: "Анна"},
		{ID: 3, Name: "Сидоров", LastName: "Сидоров"},
	}, contacts)
}

func TestClient_ListAllContacts(t *testing.T) {
	t.Run("FollowsNextLinks", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("filter[created_at][from]"))
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			writePage(w, []apiContact{{ID: int64(page), Name: fmt.Sprintf("Контакт%d", page)}}, page < 3)
		})

		contacts, err := c.ListAllContacts(context.Background())
		require.NoError(t, err)
		require.Len(t, contacts, 3)
		assert.Equal(t, int64(3), contacts[2].ID)
	})

	t.Run("NoContentIsEmpty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		contacts, err := c.ListAllContacts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})

	t.Run("ErrorStatus", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized","detail":"Token expired","status":401}`))
		})

		_, err := c.ListAllContacts(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Token expired", apiErr.Message)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		_, err := c.ListAllContacts(context.Background())
		assert.ErrorContains(t, err, "decode json")
	})
}

func TestClient_UpdateNameFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v4/contacts/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"first_name": "Петр Сергеевич", "last_name": "Иванов"}, body)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":42}`))
	})

	assert.NoError(t, c.UpdateNameFields(context.Background(), 42, "Петр Сергеевич", "Иванов"))
}

func TestClient_UpdateNameFields_ErrorClassification(t *testing.T) {
	tests := []struct {
		status   int
		rejected bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusForbidden, true},
		{http.StatusRequestTimeout, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, false},
		{http.StatusBadGateway, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			})

			err := c.UpdateNameFields(context.Background(), 1, "a", "b")
			require.Error(t, err)
			assert.Equal(t, tt.rejected, isRejected(err))
			assert.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestClient_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, AccessToken: "secret"}, nil, nil)
	require.NoError(t, err)

	err = c.UpdateNameFields(context.Background(), 1, "a", "b")
	require.Error(t, err)
	assert.False(t, isRejected(err))
}

func TestClient_NoToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls.Add(1) }))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL}, nil, nil)
	require.NoError(t, err)

	assert.False(t, c.Authorized(context.Background()))
	_, err = c.ListContacts(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Equal(t, int32(0), calls.Load())
}

func isRejected(err error) bool {
	return errors.Is(err, reconcile.ErrClientRejected)
}
