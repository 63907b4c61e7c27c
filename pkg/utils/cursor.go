package utils

import (
	"encoding/base64"
	"encoding/json"

	"trendkart/pkg/errors"
)

// Cursor marks the last document of a page in a name-ordered product
// query. The encoded form is opaque to clients.
type Cursor struct {
	Name string `json:"n"`
	ID   string `json:"i"`
}

func (c *Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.BadRequest("Invalid cursor", err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.BadRequest("Invalid cursor", err)
	}
	return &c, nil
}
