package host

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/availability"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

const hostEmail = "host@example.com"

type testConfig struct {
	baseURL string
	path    string
}

func (c *testConfig) BaseURL() string  { return c.baseURL }
func (c *testConfig) BasePath() string { return c.path }

func newSession(t *testing.T, currentIDs ...int) *session.Store {
	t.Helper()
	s, err := session.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("session.Load = %v", err)
	}
	if err := s.SignIn(hostEmail, "tok"); err != nil {
		t.Fatalf("SignIn = %v", err)
	}
	if len(currentIDs) > 0 {
		if err := s.SetCurrentIDs(currentIDs); err != nil {
			t.Fatalf("SetCurrentIDs = %v", err)
		}
	}
	return s
}

// backend is a minimal in-memory stand-in for the marketplace API. It
// records every publish request body it sees.
type backend struct {
	details map[int]client.ListingDetail

	requests  int
	publishes []string
	deletes   int

	// failMutations makes every delete and unpublish respond 500.
	failMutations bool
}

func (b *backend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests++
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/listings":
			stubs := make([]client.ListingStub, 0, len(b.details))
			for id := 1; id <= 100; id++ {
				d, ok := b.details[id]
				if !ok {
					continue
				}
				stubs = append(stubs, client.ListingStub{ID: id, Title: d.Title, Owner: d.Owner})
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"listings": stubs})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/listings/"):
			var id int
			fmt.Sscanf(r.URL.Path, "/listings/%d", &id)
			d := b.details[id]
			json.NewEncoder(w).Encode(map[string]interface{}{"listing": d})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/listings/publish/"):
			body, _ := io.ReadAll(r.Body)
			b.publishes = append(b.publishes, r.URL.Path+" "+string(body))
			io.WriteString(w, `{}`)
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/listings/unpublish/"):
			if b.failMutations {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, `{"error":"backend unavailable"}`)
				return
			}
			io.WriteString(w, `{}`)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/listings/"):
			b.deletes++
			if b.failMutations {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, `{"error":"backend unavailable"}`)
				return
			}
			io.WriteString(w, `{}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newBackend() *backend {
	return &backend{details: map[int]client.ListingDetail{
		1: {Title: "Beach House", Owner: hostEmail, Published: true},
		2: {Title: "City Flat", Owner: hostEmail, Published: false},
		3: {Title: "Barn", Owner: hostEmail, Published: false},
		4: {Title: "Not Mine", Owner: "other@example.com", Published: true},
	}}
}

func TestLoadBucketsClassifies(t *testing.T) {
	be := newBackend()
	ts := httptest.NewServer(be.handler(t))
	defer ts.Close()

	s := newSession(t, 2)
	c := client.New(ts.URL, "tok")

	buckets, err := LoadBuckets(context.Background(), c, s)
	if err != nil {
		t.Fatalf("LoadBuckets = %v", err)
	}
	if len(buckets.Current) != 1 || buckets.Current[0].ID != 2 {
		t.Errorf("Current = %v, want [2]", buckets.Current)
	}
	if len(buckets.Published) != 1 || buckets.Published[0].ID != 1 {
		t.Errorf("Published = %v, want [1]", buckets.Published)
	}
	if len(buckets.Unpublished) != 1 || buckets.Unpublished[0].ID != 3 {
		t.Errorf("Unpublished = %v, want [3]", buckets.Unpublished)
	}
}

func TestLoadBucketsRequiresLogin(t *testing.T) {
	s, err := session.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("session.Load = %v", err)
	}
	c := client.New("http://unused", "")
	if _, err := LoadBuckets(context.Background(), c, s); err != session.ErrNotLoggedIn {
		t.Fatalf("LoadBuckets = %v, want ErrNotLoggedIn", err)
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPublishIssuesExactlyOneCall(t *testing.T) {
	be := newBackend()
	ts := httptest.NewServer(be.handler(t))
	defer ts.Close()

	ranges := availability.NewRanges()
	if err := ranges.Set(0, availability.Range{Start: day("2023-12-01"), End: day("2023-12-10")}); err != nil {
		t.Fatalf("Set = %v", err)
	}
	ranges.Add()
	if err := ranges.Set(1, availability.Range{Start: day("2023-12-20"), End: day("2023-12-30")}); err != nil {
		t.Fatalf("Set = %v", err)
	}

	n := &Publish{
		ID:      2,
		Ranges:  ranges,
		Client:  client.New(ts.URL, "tok"),
		Session: newSession(t, 2),
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Publish = %v", err)
	}

	if len(be.publishes) != 1 {
		t.Fatalf("publish calls = %d, want 1", len(be.publishes))
	}
	want := `/listings/publish/2 {"availability":[{"start":"2023-12-01","end":"2023-12-10"},{"start":"2023-12-20","end":"2023-12-30"}]}`
	if got := strings.TrimSpace(be.publishes[0]); got != want {
		t.Errorf("publish request:\n got %s\nwant %s", got, want)
	}
	// A successful publish clears the dialog.
	if ranges.Len() != 1 {
		t.Errorf("ranges after publish = %d, want 1 empty entry", ranges.Len())
	}
	if err := ranges.Validate(); err != availability.ErrIncomplete {
		t.Errorf("reset list should be incomplete, got %v", err)
	}
}

func TestPublishRejectsBadRangesBeforeNetwork(t *testing.T) {
	be := newBackend()
	ts := httptest.NewServer(be.handler(t))
	defer ts.Close()

	ranges := availability.NewRanges()
	if err := ranges.Set(0, availability.Range{Start: day("2023-12-10"), End: day("2023-12-10")}); err != nil {
		t.Fatalf("Set = %v", err)
	}

	n := &Publish{
		ID:      2,
		Ranges:  ranges,
		Client:  client.New(ts.URL, "tok"),
		Session: newSession(t, 2),
	}
	err := n.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), availability.ErrDateOrder.Error()) {
		t.Fatalf("Publish = %v, want date-order rejection", err)
	}
	if be.requests != 0 {
		t.Errorf("requests = %d, want 0 (validation happens before any call)", be.requests)
	}
	// The failed submission keeps the host's edits.
	if ranges.Len() != 1 {
		t.Errorf("ranges = %d, want 1", ranges.Len())
	}
	if err := ranges.Validate(); err != availability.ErrDateOrder {
		t.Errorf("edits lost after failed publish: %v", err)
	}
}

func TestDeleteFailureLeavesStateUntouched(t *testing.T) {
	be := newBackend()
	be.failMutations = true
	ts := httptest.NewServer(be.handler(t))
	defer ts.Close()

	s := newSession(t, 2)
	n := &Delete{ID: 1, Client: client.New(ts.URL, "tok"), Session: s}
	err := n.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Delete Hosting Error") {
		t.Fatalf("Delete = %v, want scoped error", err)
	}
	if !strings.Contains(err.Error(), "backend unavailable") {
		t.Errorf("error should carry the backend message, got %v", err)
	}
	if be.deletes != 1 {
		t.Errorf("delete calls = %d, want 1", be.deletes)
	}
	if got := s.CurrentIDs(); len(got) != 1 || got[0] != 2 {
		t.Errorf("session ids after failed delete = %v, want [2]", got)
	}
}

func TestUnpublishFailureLeavesStateUntouched(t *testing.T) {
	be := newBackend()
	be.failMutations = true
	ts := httptest.NewServer(be.handler(t))
	defer ts.Close()

	n := &Unpublish{ID: 1, Client: client.New(ts.URL, "tok"), Session: newSession(t, 2)}
	err := n.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Unpublish Hosting Error") {
		t.Fatalf("Unpublish = %v, want scoped error", err)
	}

	// A fresh load still shows listing 1 as published; nothing moved.
	be.failMutations = false
	buckets, err := LoadBuckets(context.Background(), client.New(ts.URL, "tok"), newSession(t, 2))
	if err != nil {
		t.Fatalf("LoadBuckets = %v", err)
	}
	if len(buckets.Published) != 1 || buckets.Published[0].ID != 1 {
		t.Errorf("Published = %v, want [1]", buckets.Published)
	}
}

func TestMarkCurrentDeduplicates(t *testing.T) {
	s := newSession(t, 5)
	if err := markCurrent(s, 5); err != nil {
		t.Fatalf("markCurrent = %v", err)
	}
	if err := markCurrent(s, 7); err != nil {
		t.Fatalf("markCurrent = %v", err)
	}
	got := s.CurrentIDs()
	if len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Fatalf("CurrentIDs = %v, want [5 7]", got)
	}
}
