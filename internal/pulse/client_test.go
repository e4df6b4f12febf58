package pulse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "org-1", "secret-token", nil)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := client.ListRegions(context.Background()); err != nil {
		t.Fatalf("ListRegions: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestClient_ListRegions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orgs/org-1/regions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"regions":[{"id":2,"name":"Americas"},{"id":1,"name":"Europe"}]}`))
	})

	regions, err := client.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("ListRegions: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	if regions[0].Name != "Americas" {
		t.Errorf("regions[0].Name = %q, want %q", regions[0].Name, "Americas")
	}
}

func TestClient_ListLocations_ResolvesRegion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":10,"name":"Oslo HQ","region":{"id":1,"name":"Europe"}}]`))
	})

	locations, err := client.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("got %d locations, want 1", len(locations))
	}
	if locations[0].Region != "Europe" {
		t.Errorf("Region = %q, want %q", locations[0].Region, "Europe")
	}
}

func TestClient_CreateRoom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var payload struct {
			LocationID int    `json:"locationId"`
			Name       string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.LocationID != 42 || payload.Name != "Meeting Room 1" {
			t.Errorf("payload = %+v", payload)
		}
		w.Write([]byte(`{"id":7,"name":"Meeting Room 1","dec":"DEC-XYZ"}`))
	})

	room, err := client.CreateRoom(context.Background(), 42, "Meeting Room 1")
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.DEC != "DEC-XYZ" {
		t.Errorf("DEC = %q, want %q", room.DEC, "DEC-XYZ")
	}
}

func TestClient_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.CreateRoom(context.Background(), 1, "Room")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestClient_PreconditionHint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Preconditions not met"}`))
	})

	_, err := client.CreateRoom(context.Background(), 999, "Room")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Hint == "" {
		t.Error("expected a precondition hint")
	}
}

func TestClient_UnauthorizedHint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListRegions(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Hint != "check your bearer token" {
		t.Errorf("hint = %q", apiErr.Hint)
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(server.URL, "org-1", "token", nil)
	server.Close()

	_, err := client.ListRegions(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
}

func TestClient_CreateRegion_EmptyName(t *testing.T) {
	client := NewClient("http://example.invalid", "org-1", "token", nil)

	_, err := client.CreateRegion(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", "org-1", "token", nil)
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
}
