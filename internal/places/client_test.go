package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnylez/authenticfinder/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAlongConcatenatesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := r.URL.Query().Get("location")
		_, _ = fmt.Fprintf(w, `{"status": "OK", "results": [{"name": "poi near %s"}, {"name": "second near %s"}]}`, loc, loc)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	waypoints := []geo.Location{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}

	pois, errs := client.SearchAlong(context.Background(), waypoints, "diners", 8046.7)
	assert.Empty(t, errs)
	require.Len(t, pois, 4)
	assert.Equal(t, "poi near 1,1", pois[0].Name)
	assert.Equal(t, "second near 1,1", pois[1].Name)
	assert.Equal(t, "poi near 2,2", pois[2].Name)
	assert.Equal(t, "second near 2,2", pois[3].Name)
}

func TestSearchAlongQueryParameters(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{
			"location": r.URL.Query().Get("location"),
			"radius":   r.URL.Query().Get("radius"),
			"keyword":  r.URL.Query().Get("keyword"),
			"key":      r.URL.Query().Get("key"),
		}
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	pois, errs := client.SearchAlong(context.Background(), []geo.Location{{Lat: 40.5, Lng: -75.25}}, "antique stores", 1609.34)

	assert.Empty(t, errs)
	assert.Empty(t, pois)
	assert.Equal(t, "40.5,-75.25", got["location"])
	assert.Equal(t, "1609.34", got["radius"])
	assert.Equal(t, "antique stores", got["keyword"])
	assert.Equal(t, "test-key", got["key"])
}

func TestSearchAlongToleratesFailedWaypoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := r.URL.Query().Get("location")
		if loc == "2,2" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = fmt.Fprintf(w, `{"status": "OK", "results": [{"name": "poi near %s"}]}`, loc)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "test-key")
	waypoints := []geo.Location{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 3}}

	pois, errs := client.SearchAlong(context.Background(), waypoints, "diners", 5000)

	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "status 500")

	require.Len(t, pois, 2)
	assert.Equal(t, "poi near 1,1", pois[0].Name)
	assert.Equal(t, "poi near 3,3", pois[1].Name)
}

func TestSearchAlongNoWaypoints(t *testing.T) {
	client := NewClient(http.DefaultClient, "http://127.0.0.1:0", "test-key")

	pois, errs := client.SearchAlong(context.Background(), nil, "diners", 5000)
	assert.Empty(t, pois)
	assert.Empty(t, errs)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Roadside Antiques", POI{Name: "Roadside Antiques"}.DisplayName())
	assert.Equal(t, NoNamePlaceholder, POI{}.DisplayName())
}
