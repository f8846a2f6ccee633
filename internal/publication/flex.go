package publication

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleString can unmarshal from either string or number JSON values.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// Year is a publication year that accepts either a JSON number or a numeric
// string. Zero means unknown.
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	var f FlexibleString
	if err := f.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Year", string(data))
	}

	s := strings.TrimSpace(f.String())
	if s == "" {
		*y = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Allow "2024.0" style floats.
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid year %q", s)
		}
		n = int(fl)
	}
	*y = Year(n)
	return nil
}

// Int returns the year as a plain int.
func (y Year) Int() int {
	return int(y)
}
