package product

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NewRef builds a reference from a bare id.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// IsZero reports whether the reference carries no id.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	var obj struct {
		ID           string `json:"_id"`
		ShopName     string `json:"shop_name"`
		CategoryName string `json:"category_name"`
		Username     string `json:"username"`
		Email        string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("reference must be an id or an object: %w", err)
	}

	name := obj.ShopName
	for _, n := range []string{obj.CategoryName, obj.Username, obj.Email} {
		if name == "" {
			name = n
		}
	}

	*r = Ref{ID: obj.ID, Name: name, raw: append(json.RawMessage(nil), data...)}
	return nil
}

// MarshalJSON writes the populated object back when one was received,
// otherwise the bare id.
func (r Ref) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
