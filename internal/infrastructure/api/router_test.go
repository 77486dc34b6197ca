package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interfaces-generator/internal/application/usecases"
	"interfaces-generator/internal/domain/entities"
	"interfaces-generator/internal/domain/services"
	"interfaces-generator/internal/infrastructure/health"
	"interfaces-generator/internal/infrastructure/network"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
}

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func newTestServer(t *testing.T) *httptest.Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	editor := usecases.NewInterfaceEditor(&sequenceIDs{}, network.NewInterfacesRenderer(""), fixedClock{}, logger)
	handler := NewHandler(editor, health.NewHealthService(fixedClock{}, logger), logger)

	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, method, url, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestRouter_EditAndRender(t *testing.T) {
	server := newTestServer(t)

	resp := do(t, http.MethodPost, server.URL+"/interfaces", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entities.InterfaceRecord
	decodeJSON(t, resp, &created)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "eth1", created.Name)

	patches := []string{
		`{"field":"name","value":"eth0"}`,
		`{"field":"ip","value":"10.0.0.5"}`,
		`{"field":"netmask","value":"24"}`,
		`{"field":"gateway","value":"10.0.0.1"}`,
		`{"field":"dns","index":0,"value":"8.8.8.8"}`,
	}
	for _, patch := range patches {
		resp := do(t, http.MethodPatch, server.URL+"/interfaces/id-1", patch)
		require.Equal(t, http.StatusOK, resp.StatusCode, patch)
	}

	resp = do(t, http.MethodGet, server.URL+"/config", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "auto eth0\niface eth0 inet static\n    address 10.0.0.5/24\n    gateway 10.0.0.1\n    dns-nameservers 8.8.8.8\n")

	resp = do(t, http.MethodGet, server.URL+"/interfaces", "")
	var records []entities.InterfaceRecord
	decodeJSON(t, resp, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "eth0", records[0].Name)
}

func TestRouter_DeleteCascades(t *testing.T) {
	server := newTestServer(t)

	do(t, http.MethodPost, server.URL+"/interfaces", "")
	do(t, http.MethodPost, server.URL+"/interfaces", "")
	do(t, http.MethodPatch, server.URL+"/interfaces/id-1", `{"field":"type","value":"bridge"}`)
	do(t, http.MethodPatch, server.URL+"/interfaces/id-1", `{"field":"slaves","value":"eth2, eth9"}`)

	resp := do(t, http.MethodDelete, server.URL+"/interfaces/id-2", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, server.URL+"/interfaces/id-1", "")
	var bridge entities.InterfaceRecord
	decodeJSON(t, resp, &bridge)
	assert.Equal(t, []string{"eth9"}, bridge.Slaves)

	resp = do(t, http.MethodDelete, server.URL+"/interfaces/id-2", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Errors(t *testing.T) {
	server := newTestServer(t)
	do(t, http.MethodPost, server.URL+"/interfaces", "")

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantType   string
	}{
		{"없는 레코드 조회", http.MethodGet, "/interfaces/missing", "", http.StatusNotFound, "not_found"},
		{"없는 레코드 수정", http.MethodPatch, "/interfaces/missing", `{"field":"ip","value":"1.1.1.1"}`, http.StatusNotFound, "not_found"},
		{"잘못된 JSON", http.MethodPatch, "/interfaces/id-1", `{`, http.StatusBadRequest, "validation"},
		{"알 수 없는 필드", http.MethodPatch, "/interfaces/id-1", `{"field":"speed","value":"10G"}`, http.StatusBadRequest, "validation"},
		{"index 없는 dns", http.MethodPatch, "/interfaces/id-1", `{"field":"dns","value":"8.8.8.8"}`, http.StatusBadRequest, "validation"},
		{"범위 밖 dns index", http.MethodPatch, "/interfaces/id-1", `{"field":"dns","index":5,"value":"8.8.8.8"}`, http.StatusBadRequest, "validation"},
		{"없는 레코드 검증", http.MethodGet, "/interfaces/missing/issues", "", http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, server.URL+tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var errResp ErrorResponse
			decodeJSON(t, resp, &errResp)
			assert.Equal(t, tt.wantType, errResp.Type)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestRouter_IssuesAndValidation(t *testing.T) {
	server := newTestServer(t)
	do(t, http.MethodPost, server.URL+"/interfaces", "")
	do(t, http.MethodPatch, server.URL+"/interfaces/id-1", `{"field":"ip","value":"999.0.0.1"}`)

	resp := do(t, http.MethodGet, server.URL+"/interfaces/id-1/issues", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var issues []services.FieldIssue
	decodeJSON(t, resp, &issues)
	assert.Equal(t, []services.FieldIssue{
		{Field: "ip", Value: "999.0.0.1", Message: services.MessageOctetRange},
	}, issues)

	tests := []struct {
		value    string
		expected services.ValidationResult
	}{
		{"", services.ValidationResult{Valid: true}},
		{"192.168.1.1", services.ValidationResult{Valid: true}},
		{"192.168.1", services.ValidationResult{Valid: false, Message: services.MessageInvalidIPFormat}},
		{"256.1.1.1", services.ValidationResult{Valid: false, Message: services.MessageOctetRange}},
	}
	for _, tt := range tests {
		resp := do(t, http.MethodGet, server.URL+"/validate/ipv4?value="+tt.value, "")
		var result services.ValidationResult
		decodeJSON(t, resp, &result)
		assert.Equal(t, tt.expected, result, tt.value)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	server := newTestServer(t)

	resp := do(t, http.MethodGet, server.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var healthResp health.HealthResponse
	decodeJSON(t, resp, &healthResp)
	assert.Equal(t, health.StatusHealthy, healthResp.Status)

	resp = do(t, http.MethodGet, server.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ifgen_editor_records")
}
