package repository

import "encoding/json"

// Array-valued fields (images, highlights, itinerary days, amenities)
// are stored as JSON columns.  These helpers keep the scan/exec code
// in the repositories readable.

// toJSON marshals v for storage.  A nil slice is stored as "[]" so
// reads never have to deal with SQL NULL.
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(b)
	if s == "null" {
		s = "[]"
	}
	return s, nil
}

// fromJSON unmarshals a JSON column into out.  Empty input leaves out
// untouched.
func fromJSON(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
