package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"tableflip.dev/roster/pkg/student"
)

// remoteUser is the subset of the upstream users payload the generator
// seeds from.
type remoteUser struct {
	Name    string `json:"name"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Address struct {
		Street string `json:"street"`
		City   string `json:"city"`
	} `json:"address"`
}

// HTTP fetches a users endpoint and fabricates a roster from it, cycling
// through the fetched users until the configured size is reached.
type HTTP struct {
	URL    string
	Size   int
	Client *http.Client
	// Seed pins the generator for tests; zero means time-seeded.
	Seed int64
}

// NewHTTP builds an HTTP source from config.
func NewHTTP(cfg Config) *HTTP {
	return &HTTP{URL: cfg.DataURL, Size: cfg.RosterSize}
}

// Load implements Source.
func (h *HTTP) Load(ctx context.Context) ([]student.Student, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Err: fmt.Errorf("unexpected status %s from %s", resp.Status, h.URL)}
	}

	var users []remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(users) == 0 {
		return nil, &LoadError{Err: fmt.Errorf("no users in payload from %s", h.URL)}
	}

	size := h.Size
	if size <= 0 {
		size = defaultRosterSize
	}
	seed := h.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return fabricate(users, size, rand.New(rand.NewSource(seed))), nil
}

// fabricate cycles through the seed users producing size synthesized
// students with ids 1..size.
func fabricate(users []remoteUser, size int, rng *rand.Rand) []student.Student {
	out := make([]student.Student, 0, size)
	for i := 0; i < size; i++ {
		u := users[i%len(users)]
		first := u.Name
		if idx := strings.IndexByte(first, ' '); idx > 0 {
			first = first[:idx]
		}
		s := student.Student{
			ID:       i + 1,
			Name:     fmt.Sprintf("%s %s", first, token(rng)),
			Username: fmt.Sprintf("user%d", i+1),
			Email:    fmt.Sprintf("%s@example.com", token(rng)),
			Phone:    fmt.Sprintf("+1-%03d-%03d-%04d", rng.Intn(1000), rng.Intn(1000), rng.Intn(10000)),
			Website:  fmt.Sprintf("www.%s.com", token(rng)),
			Company:  student.Company{Name: strings.TrimSpace(u.Company.Name)},
			Address: student.Address{
				Street:  fmt.Sprintf("%d %s", rng.Intn(1000), u.Address.Street),
				City:    u.Address.City,
				Zipcode: fmt.Sprintf("%05d-%04d", rng.Intn(100000), rng.Intn(10000)),
			},
			Flagged: rng.Float64() < 0.2,
			Group:   student.Groups()[rng.Intn(len(student.Groups()))],
		}
		for n := rng.Intn(5); n > 0; n-- {
			s.Tags = append(s.Tags, student.Tags[rng.Intn(len(student.Tags))])
		}
		out = append(out, s)
	}
	return out
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// token mimics Math.random().toString(36).substring(7): a short lowercase
// alphanumeric run.
func token(rng *rand.Rand) string {
	n := 5 + rng.Intn(3)
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rng.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
