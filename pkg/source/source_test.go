package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/roster/pkg/student"
)

func TestSampleFabricatesRequestedSize(t *testing.T) {
	s := &Sample{Size: 23, Seed: 7}
	students, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("sample load: %v", err)
	}
	if len(students) != 23 {
		t.Fatalf("got %d students, want 23", len(students))
	}
	for i, st := range students {
		if st.ID != i+1 {
			t.Fatalf("ids not sequential: position %d has id %d", i, st.ID)
		}
		if st.Name == "" || st.Email == "" {
			t.Fatalf("student %d missing identity fields: %+v", st.ID, st)
		}
		if st.Group == "" {
			t.Fatalf("student %d missing group", st.ID)
		}
	}
}

func TestSampleIsDeterministicPerSeed(t *testing.T) {
	a, _ := (&Sample{Size: 5, Seed: 42}).Load(context.Background())
	b, _ := (&Sample{Size: 5, Seed: 42}).Load(context.Background())
	for i := range a {
		if a[i].Email != b[i].Email {
			t.Fatalf("same seed produced different rosters at %d", i)
		}
	}
}

func TestHTTPFabricatesFromPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Leanne Graham","company":{"name":"Romaguera-Crona"},"address":{"street":"Kulas Light","city":"Gwenborough"}},
			{"name":"Ervin Howell","company":{"name":"Deckow-Crist"},"address":{"street":"Victor Plains","city":"Wisokyburgh"}}
		]`))
	}))
	defer srv.Close()

	h := &HTTP{URL: srv.URL, Size: 4, Seed: 3}
	students, err := h.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(students) != 4 {
		t.Fatalf("got %d students, want 4", len(students))
	}
	// Seed users cycle: positions 0 and 2 derive from the same upstream user.
	if students[0].Address.City != "Gwenborough" || students[2].Address.City != "Gwenborough" {
		t.Fatalf("seed users did not cycle: %q, %q", students[0].Address.City, students[2].Address.City)
	}
}

func TestHTTPFailureIsLoadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := &HTTP{URL: srv.URL, Size: 4}
	_, err := h.Load(context.Background())
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestCachedFallsBackToSnapshot(t *testing.T) {
	dir := t.TempDir()

	good := NewCached(&Sample{Size: 6, Seed: 2}, dir)
	first, err := good.Load(context.Background())
	if err != nil {
		t.Fatalf("priming load: %v", err)
	}

	broken := NewCached(&failing{}, dir)
	second, err := broken.Load(context.Background())
	if err != nil {
		t.Fatalf("expected snapshot fallback, got %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("snapshot size %d, want %d", len(second), len(first))
	}
}

func TestCachedWithoutSnapshotSurfacesLoadError(t *testing.T) {
	c := NewCached(&failing{}, t.TempDir())
	_, err := c.Load(context.Background())
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

type failing struct{}

func (*failing) Load(ctx context.Context) ([]student.Student, error) {
	return nil, &LoadError{Err: errors.New("wire unplugged")}
}
