package transport

import (
	"crypto/tls"
	"net/http"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MinTLSVersion != tls.VersionTLS12 {
		t.Errorf("MinTLSVersion = %d, want %d", config.MinTLSVersion, tls.VersionTLS12)
	}
	if config.MaxTLSVersion != tls.VersionTLS13 {
		t.Errorf("MaxTLSVersion = %d, want %d", config.MaxTLSVersion, tls.VersionTLS13)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", config.Timeout)
	}
	if len(config.CipherSuites) == 0 {
		t.Error("expected recommended cipher suites to be set")
	}
}

func TestNewHTTPClient_NilConfigUsesDefaults(t *testing.T) {
	client := NewHTTPClient(nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", client.Timeout)
	}

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	if transport.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %d, want %d", transport.TLSClientConfig.MinVersion, tls.VersionTLS12)
	}
}

func TestNewHTTPClient_CustomTimeout(t *testing.T) {
	config := DefaultConfig()
	config.Timeout = 5 * time.Second

	client := NewHTTPClient(config)
	if client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.Timeout)
	}
}
