package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// mockGraphAPI stands in for the WhatsApp Cloud API send endpoint.
type mockGraphAPI struct {
	server   *httptest.Server
	received []SendCall
	failFor  map[string]int
	mu       sync.RWMutex
}

type SendCall struct {
	Path          string
	Authorization string
	To            string
	Body          string
	Time          time.Time
}

func newMockGraphAPI() *mockGraphAPI {
	g := &mockGraphAPI{
		received: make([]SendCall, 0),
		failFor:  make(map[string]int),
	}

	g.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		call := SendCall{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			To:            gjson.GetBytes(body, "to").String(),
			Body:          gjson.GetBytes(body, "text.body").String(),
			Time:          time.Now(),
		}

		g.mu.Lock()
		g.received = append(g.received, call)
		status, fail := g.failFor[call.To]
		g.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fail {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"Simulated failure","code":131000}}`))
			return
		}
		_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.` + uuid.NewString() + `"}]}`))
	}))

	return g
}

func (g *mockGraphAPI) URL() string {
	return g.server.URL
}

// FailFor makes every send to the recipient answer with status.
func (g *mockGraphAPI) FailFor(to string, status int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failFor[to] = status
}

// CallsTo returns the send calls made to a recipient.
func (g *mockGraphAPI) CallsTo(to string) []SendCall {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var calls []SendCall
	for _, call := range g.received {
		if call.To == to {
			calls = append(calls, call)
		}
	}
	return calls
}

func (g *mockGraphAPI) Close() {
	g.server.Close()
}
