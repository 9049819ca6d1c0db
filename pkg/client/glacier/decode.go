package glacier

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var errNotObject = errors.New("collectible is not a JSON object")

// UnmarshalJSON decodes every balance entry on its own, so one malformed entry is
// skipped instead of failing the page.
func (r *ListCollectiblesResponse) UnmarshalJSON(b []byte) error {
	var wire struct {
		CollectibleBalances []json.RawMessage `json:"collectibleBalances"`
		NextPageToken       json.RawMessage   `json:"nextPageToken"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	out := ListCollectiblesResponse{NextPageToken: lenientString(wire.NextPageToken)}
	if wire.CollectibleBalances != nil {
		out.CollectibleBalances = make([]Collectible, 0, len(wire.CollectibleBalances))
	}
	for _, item := range wire.CollectibleBalances {
		var c Collectible
		if err := json.Unmarshal(item, &c); err != nil {
			out.Skipped++
			continue
		}
		out.CollectibleBalances = append(out.CollectibleBalances, c)
	}

	*r = out
	return nil
}

// UnmarshalJSON reads every field leniently: strings are kept, numbers are
// formatted, anything else is treated as missing.
func (c *Collectible) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		return errNotObject
	}

	*c = Collectible{
		Address:  field(raw, "address"),
		TokenID:  field(raw, "tokenId"),
		Name:     field(raw, "name"),
		Symbol:   field(raw, "symbol"),
		TokenURI: field(raw, "tokenUri"),
		ErcType:  field(raw, "ercType"),
	}
	return nil
}

func field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	}
	return ""
}

func lenientString(b json.RawMessage) string {
	if len(b) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ""
	}
	return s
}
