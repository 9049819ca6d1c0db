package placeholder

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gosimple/slug"
)

const (
	DefaultBaseURL = "https://picsum.photos"
	DefaultSize    = 400
)

type Config struct {
	BaseURL string `envconfig:"PLACEHOLDER_BASE_URL" default:"https://picsum.photos"`
	Size    int    `envconfig:"PLACEHOLDER_SIZE" default:"400"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.Size, validation.Min(0), validation.Max(4096)),
	)
}

// Generator builds seeded placeholder image URLs. The same seed always yields the
// same image, so an item keeps its placeholder across renders.
type Generator struct {
	baseURL string
	size    int
}

func New(cfg Config) *Generator {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}

	return &Generator{baseURL: base, size: size}
}

// ForID returns the placeholder for an item identifier such as "0xabc-7".
func (g *Generator) ForID(id string) string {
	seed := slug.Make(id)
	if seed == "" {
		seed = "nft"
	}
	return g.url(seed)
}

// ForIndex returns the placeholder for a position in a list.
func (g *Generator) ForIndex(index int) string {
	return g.url(fmt.Sprintf("nft-%d", index))
}

func (g *Generator) url(seed string) string {
	return fmt.Sprintf("%s/seed/%s/%d/%d", g.baseURL, seed, g.size, g.size)
}
