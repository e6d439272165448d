package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/example/content-assistant/internal/application"
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/testfixtures"
)

func TestBrandHandler_Create(t *testing.T) {
	fakes := newRouterFakes()
	var gotParams application.BrandProfileParams
	fakes.brands.create = func(_ application.UserContext, params application.BrandProfileParams) (persistence.BrandProfile, error) {
		gotParams = params
		return testfixtures.BrandProfile("user-1"), nil
	}

	handler := newTestRouter(fakes)
	rec := doRequest(t, handler, http.MethodPost, "/brand",
		`{"name":"Driftwood Coffee","industry":"Food & Beverage","key_values":["specialty coffee","fair trade"]}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotParams.Name != "Driftwood Coffee" || len(gotParams.KeyValues) != 2 {
		t.Fatalf("unexpected params: %+v", gotParams)
	}
}

func TestBrandHandler_Get(t *testing.T) {
	t.Run("returns the current profile", func(t *testing.T) {
		fakes := newRouterFakes()
		profile := testfixtures.BrandProfile("user-1")
		fakes.brands.get = func(application.UserContext) (persistence.BrandProfile, error) {
			return profile, nil
		}

		handler := newTestRouter(fakes)
		rec := doRequest(t, handler, http.MethodGet, "/brand", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var body map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["name"] != profile.Name {
			t.Fatalf("expected name %q, got %v", profile.Name, body["name"])
		}
	})

	t.Run("no profile yet is not found", func(t *testing.T) {
		fakes := newRouterFakes()
		fakes.brands.get = func(application.UserContext) (persistence.BrandProfile, error) {
			return persistence.BrandProfile{}, application.ErrNotFound
		}

		handler := newTestRouter(fakes)
		rec := doRequest(t, handler, http.MethodGet, "/brand", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBrandHandler_Update(t *testing.T) {
	fakes := newRouterFakes()
	var gotID string
	fakes.brands.update = func(_ application.UserContext, id string, params application.BrandProfileParams) (persistence.BrandProfile, error) {
		gotID = id
		profile := testfixtures.BrandProfile("user-1")
		profile.Name = params.Name
		return profile, nil
	}

	handler := newTestRouter(fakes)
	rec := doRequest(t, handler, http.MethodPut, "/brand/brand-1", `{"name":"Renamed"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "brand-1" {
		t.Fatalf("expected brand-1, got %q", gotID)
	}
}

func TestBrandHandler_Delete(t *testing.T) {
	fakes := newRouterFakes()
	fakes.brands.delete = func(_ application.UserContext, id string) error {
		return nil
	}

	handler := newTestRouter(fakes)
	rec := doRequest(t, handler, http.MethodDelete, "/brand/brand-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
