package market

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrDuplicateID means a seed catalog lists the same id twice.
var ErrDuplicateID = errors.New("duplicate listing id")

// seedCreatedAt labels catalog entries that do not carry their own label.
const seedCreatedAt = "earlier"

// DefaultSeed returns the sample listings a session starts with when no
// catalog file is configured.
func DefaultSeed() []Listing {
	return []Listing{
		{
			ID:          1,
			Title:       "React todo list component",
			Price:       15000,
			Code:        "function TodoList() {\n  const [todos, setTodos] = useState([]);\n  return <div>...</div>\n}",
			Description: "A clean, ready-to-drop todo list component.",
			Language:    "JavaScript",
			CreatedAt:   "2 hours ago",
		},
		{
			ID:          2,
			Title:       "Tower of Hanoi solver",
			Price:       8000,
			Code:        "def hanoi(n, src, dst, via):\n    if n == 0:\n        return\n    hanoi(n - 1, src, via, dst)\n    print(f\"{src} -> {dst}\")\n    hanoi(n - 1, via, dst, src)",
			Description: "Classic three-peg puzzle solved with divide and conquer.",
			Language:    "Python",
			CreatedAt:   "yesterday",
		},
		{
			ID:          3,
			Title:       "Graceful HTTP shutdown",
			Price:       12000,
			Code:        "ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)\ndefer stop()\n<-ctx.Done()\nsrv.Shutdown(context.Background())",
			Description: "Drains in-flight requests before the server exits.",
			Language:    "Go(Golang)",
			CreatedAt:   "3 days ago",
		},
	}
}

type catalog struct {
	Listings []Listing `toml:"listing"`
}

// LoadSeed reads a TOML catalog of [[listing]] tables. An empty path or a
// missing file yields DefaultSeed. Entries without an id are numbered after
// the largest explicit id, in file order.
func LoadSeed(path string) ([]Listing, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSeed(), nil
		}
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var cat catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return normalizeSeed(cat.Listings)
}

func normalizeSeed(listings []Listing) ([]Listing, error) {
	seen := make(map[int]struct{}, len(listings))
	for _, l := range listings {
		if l.Price < 0 {
			return nil, fmt.Errorf("listing %q: price must not be negative, got %d", l.Title, l.Price)
		}
		if l.ID == 0 {
			continue
		}
		if l.ID < 0 {
			return nil, fmt.Errorf("listing %q: id must be positive, got %d", l.Title, l.ID)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	next := State{Listings: listings}.NextID()
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.ID == 0 {
			l.ID = next
			next++
		}
		if strings.TrimSpace(l.Language) == "" {
			l.Language = DefaultLanguage
		}
		if strings.TrimSpace(l.CreatedAt) == "" {
			l.CreatedAt = seedCreatedAt
		}
		out = append(out, l)
	}
	return out, nil
}
