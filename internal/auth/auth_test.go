package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rickgao/auction-stats/internal/model"
)

const testSecret = "s3cr3t-access-token"

func TestToken_Redaction(t *testing.T) {
	tok := NewToken("Bearer", testSecret)

	if got := tok.Header(); got != "Bearer "+testSecret {
		t.Errorf("Header() = %q, want %q", got, "Bearer "+testSecret)
	}

	forms := map[string]string{
		"%v":       fmt.Sprintf("%v", tok),
		"%+v":      fmt.Sprintf("%+v", tok),
		"%#v":      fmt.Sprintf("%#v", tok),
		"%s":       fmt.Sprintf("%s", tok),
		"%q":       fmt.Sprintf("%q", tok),
		"%x":       fmt.Sprintf("%x", tok),
		"%d":       fmt.Sprintf("%d", tok),
		"%t":       fmt.Sprintf("%t", tok),
		"%T":       fmt.Sprintf("%T", tok),
		"%p":       fmt.Sprintf("%p", &tok),
		"%10.3s":   fmt.Sprintf("%10.3s", tok),
		"Sprint":   fmt.Sprint(tok),
		"Sprintln": fmt.Sprintln(tok),
		"wrapped":  fmt.Sprintf("%v", fmt.Errorf("auth failed for %d", tok)),
	}
	for verb, out := range forms {
		if strings.Contains(out, testSecret) {
			t.Errorf("format %s leaked secret: %q", verb, out)
		}
	}
	for _, verb := range []string{"%v", "%d", "%t", "%s"} {
		if got := fmt.Sprintf(verb, tok); got != redacted {
			t.Errorf("Sprintf(%q) = %q, want %q", verb, got, redacted)
		}
	}
	if got := fmt.Sprintf("%#v", tok); got != "auth.Token{"+redacted+"}" {
		t.Errorf("Sprintf(%%#v) = %q, want GoString form", got)
	}

	data, err := json.Marshal(struct{ Token Token }{tok})
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if strings.Contains(string(data), testSecret) {
		t.Errorf("json leaked secret: %s", data)
	}

	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("token", "token", tok)
	if strings.Contains(buf.String(), testSecret) {
		t.Errorf("slog leaked secret: %s", buf.String())
	}
	if !strings.Contains(buf.String(), redacted) {
		t.Errorf("slog output missing redaction marker: %s", buf.String())
	}
}

func TestToken_IsZero(t *testing.T) {
	if !(Token{}).IsZero() {
		t.Error("zero Token should report IsZero")
	}
	if NewToken("Bearer", "x").IsZero() {
		t.Error("populated Token should not report IsZero")
	}
}

func TestProvider_Token(t *testing.T) {
	t.Run("successful exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("Method = %s, want POST", r.Method)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "client-id" || pass != "client-secret" {
				t.Errorf("BasicAuth = (%q, %q, %v), want client credentials", user, pass, ok)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("ParseForm: %v", err)
			}
			if gt := r.PostForm.Get("grant_type"); gt != "client_credentials" {
				t.Errorf("grant_type = %q, want client_credentials", gt)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"` + testSecret + `","token_type":"bearer","expires_in":86399}`))
		}))
		defer server.Close()

		p := NewProvider("client-id", "client-secret", WithTokenURL(server.URL))
		tok, err := p.Token(context.Background())
		if err != nil {
			t.Fatalf("Token() error: %v", err)
		}
		if got := tok.Header(); got != "Bearer "+testSecret {
			t.Errorf("Header() = %q, want %q", got, "Bearer "+testSecret)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client or Invalid client credentials"}`))
		}))
		defer server.Close()

		p := NewProvider("client-id", "wrong-secret", WithTokenURL(server.URL))
		_, err := p.Token(context.Background())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, model.ErrAuth) {
			t.Errorf("error = %v, want ErrAuth", err)
		}
		if strings.Contains(err.Error(), "wrong-secret") {
			t.Errorf("error leaked client secret: %v", err)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token_type":"bearer"}`))
		}))
		defer server.Close()

		p := NewProvider("client-id", "client-secret", WithTokenURL(server.URL))
		_, err := p.Token(context.Background())
		if !errors.Is(err, model.ErrAuth) {
			t.Errorf("error = %v, want ErrAuth", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		p := NewProvider("client-id", "client-secret", WithTokenURL(url))
		_, err := p.Token(context.Background())
		if !errors.Is(err, model.ErrAuth) {
			t.Errorf("error = %v, want ErrAuth", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		p := NewProvider("", "")
		_, err := p.Token(context.Background())
		if !errors.Is(err, model.ErrAuth) {
			t.Errorf("error = %v, want ErrAuth", err)
		}
	})
}
