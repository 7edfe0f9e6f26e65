package httpapi

import (
	"net/http"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	"github.com/stretchr/testify/require"
)

type apiEnvelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func doJSON(t *testing.T, client *http.Client, method, target, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), method, target, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func decodeEnvelope[T any](t *testing.T, raw string) apiEnvelope[T] {
	t.Helper()

	var out apiEnvelope[T]
	require.NoError(t, sonic.UnmarshalString(raw, &out))
	return out
}

func TestGolfBagAPI_CreateThenGet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/golfbags", `{"player":"Joe","capacity":10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "/api/v1/golfbags/1", resp.Header.Get("Location"))

	created := decodeEnvelope[golfBagDTO](t, body)
	require.Equal(t, googleAPIVersion, created.APIVersion)
	require.Equal(t, golfBagDTO{ID: 1, Player: "Joe", Capacity: 10}, created.Data)

	resp, body = doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/golfbags/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Joe", decodeEnvelope[golfBagDTO](t, body).Data.Player)
}

func TestGolfBagAPI_CreateMultibytePlayer(t *testing.T) {
	srv, _ := newTestServer(t)
	player := strings.Repeat("é", 60)

	resp, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/golfbags", `{"player":"`+player+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	require.Equal(t, player, decodeEnvelope[golfBagDTO](t, body).Data.Player)
}

func TestGolfBagAPI_ListOmitsClubs(t *testing.T) {
	srv, _ := newTestServer(t,
		golfbag.Bag{Player: "Joe", Capacity: 10, Clubs: []golfbag.Club{{Name: "Driver"}}},
		golfbag.Bag{Player: "Jim", Capacity: 8},
	)

	resp, body := doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/golfbags", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeEnvelope[[]golfBagDTO](t, body)
	require.Equal(t, []golfBagDTO{
		{ID: 1, Player: "Joe", Capacity: 10},
		{ID: 2, Player: "Jim", Capacity: 8},
	}, list.Data)
}

func TestGolfBagAPI_GetIncludesClubs(t *testing.T) {
	srv, _ := newTestServer(t, golfbag.Bag{
		Player:   "Joe",
		Capacity: 10,
		Clubs:    []golfbag.Club{{Name: "Driver"}, {Name: "Putter"}},
	})

	resp, body := doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/golfbags/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeEnvelope[golfBagDTO](t, body).Data
	require.Len(t, got.Clubs, 2)
	require.Equal(t, "Driver", got.Clubs[0].Name)
	require.Equal(t, "Putter", got.Clubs[1].Name)
}

func TestGolfBagAPI_UpdateAndDelete(t *testing.T) {
	srv, _ := newTestServer(t, golfbag.Bag{Player: "Jim", Capacity: 8})

	resp, body := doJSON(t, srv.Client(), http.MethodPut, srv.URL+"/api/v1/golfbags/1", `{"player":"Joe"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, golfBagDTO{ID: 1, Player: "Joe", Capacity: 0}, decodeEnvelope[golfBagDTO](t, body).Data)

	resp, body = doJSON(t, srv.Client(), http.MethodDelete, srv.URL+"/api/v1/golfbags/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"apiVersion":"2.0","data":{"deleted":true}}`, body)

	resp, _ = doJSON(t, srv.Client(), http.MethodGet, srv.URL+"/api/v1/golfbags/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGolfBagAPI_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing player", body: `{"capacity":3}`},
		{name: "negative capacity", body: `{"player":"Joe","capacity":-1}`},
		{name: "unknown field", body: `{"player":"Joe","clubs":[]}`},
		{name: "malformed json", body: `{"player":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newTestServer(t)

			resp, body := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/golfbags", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			env := decodeEnvelope[any](t, body)
			require.NotNil(t, env.Error)
			require.Equal(t, "INVALID_ARGUMENT", env.Error.Status)

			bags, err := repo.List(t.Context())
			require.NoError(t, err)
			require.Empty(t, bags)
		})
	}
}

func TestGolfBagAPI_MissingRecordIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "get", method: http.MethodGet, path: "/api/v1/golfbags/42"},
		{name: "get non integer", method: http.MethodGet, path: "/api/v1/golfbags/abc"},
		{name: "update", method: http.MethodPut, path: "/api/v1/golfbags/42", body: `{"player":"Joe"}`},
		{name: "delete", method: http.MethodDelete, path: "/api/v1/golfbags/42"},
	}

	srv, _ := newTestServer(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, srv.Client(), tt.method, srv.URL+tt.path, tt.body)
			require.Equal(t, http.StatusNotFound, resp.StatusCode)
			require.Equal(t, "NOT_FOUND", decodeEnvelope[any](t, body).Error.Status)
		})
	}
}
