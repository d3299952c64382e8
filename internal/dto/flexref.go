package dto

import "encoding/json"

// FlexRef accepts a reference that clients send either as a bare string
// ("Groceries") or as an object ({"id": "...", "name": "Groceries"}).
// Legacy clients of the finance API use the string form for both category
// and account fields.
type FlexRef struct {
	ID   string
	Name string
}

// flexRefObject is the object form of a FlexRef on the wire.
type flexRefObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts a JSON string, an object with id/name, or null.
func (r *FlexRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = FlexRef{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = FlexRef{Name: s}
		return nil
	}

	var obj flexRefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = FlexRef{ID: obj.ID, Name: obj.Name}
	return nil
}

// MarshalJSON always emits the object form.
func (r FlexRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(flexRefObject{ID: r.ID, Name: r.Name})
}

// IsZero reports whether the reference carries neither an id nor a name.
func (r FlexRef) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

// NameOr returns the reference name, or fallback when the name is empty.
func (r FlexRef) NameOr(fallback string) string {
	if r.Name != "" {
		return r.Name
	}
	return fallback
}
