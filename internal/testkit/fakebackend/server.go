package fakebackend

import (
	"net/http/httptest"
	"strings"
	"testing"
)

// Start serves a fresh backend for the duration of the test.
func Start(t testing.TB) (*Backend, *httptest.Server) {
	t.Helper()
	backend := New()
	server := httptest.NewServer(backend.Handler())
	t.Cleanup(func() {
		backend.DropConnections()
		server.Close()
	})
	return backend, server
}

// RealtimeURL is the hub address for a server started with Start.
func RealtimeURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/hubs/votacao"
}
