package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Price is a float64 that tolerates string-typed numeric JSON input:
// "15000" and 15000 both decode to 15000. Clients routinely send
// prices as strings, so decoding coerces instead of rejecting.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

var _ json.Unmarshaler = (*Price)(nil)

// Product represents a single menu item in the catalog.
type Product struct {
	ID       string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string      `json:"name"`
	Price    Price       `json:"price"`
	Img      string      `json:"img"`
	Category CategoryKey `json:"category" gorm:"type:varchar(100);index"`
}
