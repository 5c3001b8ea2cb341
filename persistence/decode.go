package persistence

import (
	"encoding/json"
	"errors"
)

var errFirestoreUnconfigured = errors.New("firestore client is not configured")

// decodeField coerces a raw Firestore field value into a typed snapshot.
// Documents written by older clients may carry extra or missing keys; the
// JSON round-trip drops what it does not recognize instead of erroring on it.
func decodeField(raw interface{}, out interface{}) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
