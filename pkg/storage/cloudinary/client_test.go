package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yarigadev/yariga-backend/pkg/config"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "shhh",
		Timeout:   5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if serverURL != "" {
		client.baseURL = serverURL
	}
	client.now = func() time.Time { return time.Unix(1700000000, 0) }
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(config.CloudinaryConfig{APIKey: "k", APISecret: "s"}, nil); err == nil {
		t.Fatal("expected error without cloud name")
	}
	if _, err := NewClient(config.CloudinaryConfig{CloudName: "demo"}, nil); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestUploadReturnsSecureURL(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"file":      r.PostFormValue("file"),
			"api_key":   r.PostFormValue("api_key"),
			"timestamp": r.PostFormValue("timestamp"),
			"signature": r.PostFormValue("signature"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/abc.png","public_id":"abc"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	hosted, err := client.Upload(context.Background(), "data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if hosted != "https://res.cloudinary.com/demo/image/upload/v1/abc.png" {
		t.Fatalf("unexpected url %q", hosted)
	}
	if gotPath != "/demo/image/upload" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotForm["file"] != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("unexpected file field %q", gotForm["file"])
	}
	if gotForm["api_key"] != "key123" {
		t.Fatalf("unexpected api key %q", gotForm["api_key"])
	}

	sum := sha1.Sum([]byte("timestamp=" + gotForm["timestamp"] + "shhh"))
	if gotForm["signature"] != hex.EncodeToString(sum[:]) {
		t.Fatalf("signature mismatch: %q", gotForm["signature"])
	}
}

func TestUploadSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	_, err := client.Upload(context.Background(), "data:image/png;base64,xxxx")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "Invalid image file"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in %q", want, err.Error())
	}
}

func TestUploadRejectsEmptySource(t *testing.T) {
	client := testClient(t, "")
	if _, err := client.Upload(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestSignRequestSortsKeys(t *testing.T) {
	got := signRequest(map[string]string{"timestamp": "100", "folder": "yariga"}, "secret")
	sum := sha1.Sum([]byte("folder=yariga&timestamp=100secret"))
	if got != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected signature %q", got)
	}
}

