package powerschool

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// newTestClient builds a client against an httptest server whose token
// endpoint always succeeds and whose data endpoints are served by handler.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"abc","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(testCredentials(server.URL), opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, server
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Credentials{BaseURL: "https://ps.example.com"})
	cfgErr, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
	if len(cfgErr.Missing) != 2 {
		t.Errorf("expected 2 missing fields, got %v", cfgErr.Missing)
	}
}

func TestCallSuccess(t *testing.T) {
	const body = `{"grades":[{"course":"Algebra","letter":"A-","percent":91.5}]}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected bearer token attached, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})

	res := client.Call(context.Background(), "/ws/v1/student/grades", nil)
	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}

	want := map[string]any{
		"grades": []any{map[string]any{
			"course":  "Algebra",
			"letter":  "A-",
			"percent": 91.5,
		}},
	}
	if !reflect.DeepEqual(res.Data, want) {
		t.Errorf("payload mismatch:\n got %#v\nwant %#v", res.Data, want)
	}
}

func TestCallNeverReturnsUncaughtFailures(t *testing.T) {
	cases := []struct {
		name      string
		handler   http.HandlerFunc
		wantError string
	}{
		{
			name: "401 unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "expired", http.StatusUnauthorized)
			},
			wantError: "not authorized",
		},
		{
			name: "403 forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			},
			wantError: "not authorized",
		},
		{
			name: "500 upstream error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "oops", http.StatusInternalServerError)
			},
			wantError: "status 500",
		},
		{
			name: "404 upstream error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantError: "status 404",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"grades": [unterminated`)
			},
			wantError: "parse error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, tc.handler)
			res := client.Call(context.Background(), "/ws/v1/student/grades", nil)
			if res.Success {
				t.Fatal("expected a failure envelope")
			}
			if !strings.Contains(res.Error, tc.wantError) {
				t.Errorf("expected error containing %q, got %q", tc.wantError, res.Error)
			}
			if res.Data != nil {
				t.Errorf("failure envelope must not carry data, got %#v", res.Data)
			}
		})
	}
}

func TestCallTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, `{}`)
	}, WithHTTPTimeout(50*time.Millisecond))

	res := client.Call(context.Background(), "/ws/v1/student", nil)
	if res.Success {
		t.Fatal("expected a failure envelope")
	}
	if !strings.Contains(res.Error, "timed out") {
		t.Errorf("expected a timeout message, got %q", res.Error)
	}
}

func TestCallConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, err := NewClient(testCredentials(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	res := client.Call(context.Background(), "/ws/v1/student", nil)
	if res.Success {
		t.Fatal("expected a failure envelope")
	}
	// The token request fails first, so this surfaces as an auth failure.
	if !strings.Contains(res.Error, "failed to authenticate") {
		t.Errorf("expected an authentication failure message, got %q", res.Error)
	}
}

func TestCallAuthenticationFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(testCredentials(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	res := client.Call(context.Background(), "/ws/v1/student/grades", nil)
	if res.Success {
		t.Fatal("expected a failure envelope")
	}
	if !strings.Contains(res.Error, "failed to authenticate") {
		t.Errorf("expected an authentication failure message, got %q", res.Error)
	}
}

func TestCall401DoesNotForceRefresh(t *testing.T) {
	var tokenRequests int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenRequests, 1)
		fmt.Fprint(w, `{"access_token":"abc","expires_in":3600}`)
	})
	mux.HandleFunc("/ws/v1/student/grades", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rejected", http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(testCredentials(server.URL))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	// A 401 on an unexpired token is surfaced as-is; it does not trigger
	// re-authentication within the call or invalidate the cached token.
	for i := 0; i < 3; i++ {
		res := client.Call(context.Background(), "/ws/v1/student/grades", nil)
		if res.Success {
			t.Fatal("expected a failure envelope")
		}
	}
	if got := atomic.LoadInt32(&tokenRequests); got != 1 {
		t.Errorf("expected a single token request despite 401s, got %d", got)
	}
}
