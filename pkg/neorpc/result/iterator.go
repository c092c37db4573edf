package result

import (
	"encoding/json"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/stackitem"
	"github.com/google/uuid"
)

// iteratorInterfaceName is the interface name of iterators returned by the
// node within InteropInterface items.
const iteratorInterfaceName = "IIterator"

// Iterator is an iterator returned on the result stack. Nodes supporting
// sessions set ID and may expand some values, nodes without sessions may
// expand it in place setting Truncated if there are more values, otherwise
// it's empty.
type Iterator struct {
	ID        *uuid.UUID
	Values    []stackitem.Item
	Truncated bool
}

type iteratorJSON struct {
	Type      string            `json:"type"`
	Interface string            `json:"interface,omitempty"`
	ID        string            `json:"id,omitempty"`
	Value     []json.RawMessage `json:"iterator,omitempty"`
	Truncated bool              `json:"truncated,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (r Iterator) MarshalJSON() ([]byte, error) {
	js := iteratorJSON{
		Type:      stackitem.InteropT.String(),
		Truncated: r.Truncated,
	}
	if r.ID != nil {
		js.Interface = iteratorInterfaceName
		js.ID = r.ID.String()
	}
	if r.Values != nil {
		js.Value = make([]json.RawMessage, len(r.Values))
		for i := range r.Values {
			data, err := stackitem.ToJSONWithTypes(r.Values[i])
			if err != nil {
				return nil, err
			}
			js.Value[i] = data
		}
	}
	return json.Marshal(js)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Iterator) UnmarshalJSON(data []byte) error {
	var js iteratorJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	if js.Interface != "" {
		if js.Interface != iteratorInterfaceName {
			return fmt.Errorf("unknown InteropInterface: %s", js.Interface)
		}
		id, err := uuid.Parse(js.ID)
		if err != nil {
			return fmt.Errorf("failed to unmarshal iterator ID: %w", err)
		}
		r.ID = &id
	}
	if js.Value != nil {
		r.Values = make([]stackitem.Item, len(js.Value))
		for i := range js.Value {
			item, err := stackitem.FromJSONWithTypes(js.Value[i])
			if err != nil {
				return fmt.Errorf("failed to unmarshal iterator values: %w", err)
			}
			r.Values[i] = item
		}
	}
	r.Truncated = js.Truncated
	return nil
}
