package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Metadata is the typed view of a token's off-chain JSON document. Every known key is
// optional and read leniently: a value of the wrong JSON type is treated as absent.
// Raw keeps the whole document, unknown keys included.
type Metadata struct {
	Name           string
	Description    string
	Image          string
	ImageURL       string // image_url
	ImageURLCamel  string // imageUrl
	AnimationURL   string
	Media          string
	MediaURL       string
	MediaType      string // mediaType
	MediaTypeSnake string // media_type
	Creator        string
	Owner          string
	Price          *decimal.Decimal
	Collection     *Collection
	Properties     *Properties

	Raw map[string]any
}

type Collection struct {
	Name        string
	Description string
	Image       string
	Symbol      string
}

type Properties struct {
	Image string
}

var errNotObject = errors.New("metadata document is not a JSON object")

// Empty is the metadata used when nothing could be fetched.
func Empty() *Metadata {
	return &Metadata{Raw: map[string]any{}}
}

// Parse decodes a metadata document. Only a body that is not a JSON object fails.
func Parse(body []byte) (*Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error unmarshalling metadata: %w", err)
	}
	if raw == nil {
		return nil, errNotObject
	}

	return FromMap(raw), nil
}

func FromMap(raw map[string]any) *Metadata {
	if raw == nil {
		return Empty()
	}

	md := &Metadata{
		Name:           str(raw, "name"),
		Description:    str(raw, "description"),
		Image:          str(raw, "image"),
		ImageURL:       str(raw, "image_url"),
		ImageURLCamel:  str(raw, "imageUrl"),
		AnimationURL:   str(raw, "animation_url"),
		Media:          str(raw, "media"),
		MediaURL:       str(raw, "mediaUrl"),
		MediaType:      str(raw, "mediaType"),
		MediaTypeSnake: str(raw, "media_type"),
		Creator:        str(raw, "creator"),
		Owner:          str(raw, "owner"),
		Price:          price(raw["price"]),
		Raw:            raw,
	}

	if c, ok := raw["collection"].(map[string]any); ok {
		md.Collection = &Collection{
			Name:        str(c, "name"),
			Description: str(c, "description"),
			Image:       str(c, "image"),
			Symbol:      str(c, "symbol"),
		}
	}

	if p, ok := raw["properties"].(map[string]any); ok {
		md.Properties = &Properties{Image: str(p, "image")}
	}

	return md
}

func (m *Metadata) UnmarshalJSON(b []byte) error {
	parsed, err := Parse(b)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	if m.Raw == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.Raw)
}

func (m *Metadata) IsEmpty() bool {
	return m == nil || len(m.Raw) == 0
}

// CollectionName returns collection.name. Like the accessors below it is nil-safe.
func (m *Metadata) CollectionName() string {
	if m == nil || m.Collection == nil {
		return ""
	}
	return m.Collection.Name
}

func (m *Metadata) CollectionDescription() string {
	if m == nil || m.Collection == nil {
		return ""
	}
	return m.Collection.Description
}

func (m *Metadata) CollectionImage() string {
	if m == nil || m.Collection == nil {
		return ""
	}
	return m.Collection.Image
}

func (m *Metadata) CollectionSymbol() string {
	if m == nil || m.Collection == nil {
		return ""
	}
	return m.Collection.Symbol
}

func (m *Metadata) PropertiesImage() string {
	if m == nil || m.Properties == nil {
		return ""
	}
	return m.Properties.Image
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func price(v any) *decimal.Decimal {
	var (
		d   decimal.Decimal
		err error
	)

	switch t := v.(type) {
	case json.Number:
		d, err = decimal.NewFromString(t.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(t))
	case float64:
		d = decimal.NewFromFloat(t)
	default:
		return nil
	}
	if err != nil {
		return nil
	}

	return &d
}
