package result

import (
	"encoding/json"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/stackitem"
	"github.com/google/uuid"
)

// Invoke is the result of invokescript, invokefunction and
// invokecontractverify calls. GasConsumed is what the script costs, it's
// used as the system fee of transactions running it.
type Invoke struct {
	State          string
	GasConsumed    int64
	Script         []byte
	Stack          []stackitem.Item
	FaultException string
	Notifications  []NotificationEvent
	Transaction    *transaction.Transaction
	Session        uuid.UUID
}

// VM states reported by the node.
const (
	StateHalt  = "HALT"
	StateFault = "FAULT"
)

type invokeJSON struct {
	State          string              `json:"state"`
	GasConsumed    int64               `json:"gasconsumed,string"`
	Script         []byte              `json:"script"`
	Stack          json.RawMessage     `json:"stack"`
	FaultException *string             `json:"exception"`
	Notifications  []NotificationEvent `json:"notifications"`
	Transaction    []byte              `json:"tx,omitempty"`
	Session        string              `json:"session,omitempty"`
}

// IsHalt returns true if the invocation has finished successfully.
func (r *Invoke) IsHalt() bool {
	return r.State == StateHalt
}

// MarshalJSON implements the json.Marshaler interface. Stack items that can't
// be represented in JSON are reported in the exception and the stack is
// omitted then.
func (r Invoke) MarshalJSON() ([]byte, error) {
	js := &invokeJSON{
		State:         r.State,
		GasConsumed:   r.GasConsumed,
		Script:        r.Script,
		Notifications: r.Notifications,
	}
	stack, err := marshalStack(r.Stack)
	if err != nil {
		if r.FaultException != "" {
			r.FaultException += " / "
		}
		r.FaultException += "json error: " + err.Error()
	} else {
		js.Stack = stack
	}
	if r.FaultException != "" {
		js.FaultException = &r.FaultException
	}
	if r.Transaction != nil {
		js.Transaction = r.Transaction.Bytes()
	}
	if r.Session != (uuid.UUID{}) {
		js.Session = r.Session.String()
	}
	return json.Marshal(js)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *Invoke) UnmarshalJSON(data []byte) error {
	var js invokeJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	if js.Session != "" {
		id, err := uuid.Parse(js.Session)
		if err != nil {
			return fmt.Errorf("failed to parse session ID: %w", err)
		}
		r.Session = id
	}
	var raw []json.RawMessage
	if json.Unmarshal(js.Stack, &raw) == nil {
		stack, err := unmarshalStack(raw)
		if err != nil {
			return fmt.Errorf("failed to unmarshal stack: %w", err)
		}
		r.Stack = stack
	}
	r.Transaction = nil
	if len(js.Transaction) != 0 {
		tx, err := transaction.NewTransactionFromBytes(js.Transaction)
		if err != nil {
			return err
		}
		r.Transaction = tx
	}
	r.State = js.State
	r.GasConsumed = js.GasConsumed
	r.Script = js.Script
	if js.FaultException != nil {
		r.FaultException = *js.FaultException
	}
	r.Notifications = js.Notifications
	return nil
}

func marshalStack(items []stackitem.Item) (json.RawMessage, error) {
	arr := make([]json.RawMessage, len(items))
	for i, item := range items {
		var (
			data []byte
			err  error
		)
		if iter, ok := item.Value().(Iterator); ok && item.Type() == stackitem.InteropT {
			data, err = json.Marshal(iter)
		} else {
			data, err = stackitem.ToJSONWithTypes(item)
		}
		if err != nil {
			return nil, err
		}
		arr[i] = data
	}
	return json.Marshal(arr)
}

// unmarshalStack decodes stack items, InteropInterface ones are expected to be
// iterators.
func unmarshalStack(raw []json.RawMessage) ([]stackitem.Item, error) {
	stack := make([]stackitem.Item, len(raw))
	for i := range raw {
		item, err := stackitem.FromJSONWithTypes(raw[i])
		if err != nil {
			return nil, err
		}
		if item.Type() == stackitem.InteropT {
			var iter Iterator
			if err := json.Unmarshal(raw[i], &iter); err != nil {
				return nil, err
			}
			item = stackitem.NewInterop(iter)
		}
		stack[i] = item
	}
	return stack, nil
}
