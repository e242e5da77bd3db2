package cart

import (
	"encoding/json"
	"fmt"

	"github.com/dukaforge/cartbox/pkg/types"
)

// Store snapshots the current instance's entire content to the durable
// store under identifier. Fails with ErrAlreadyStored when the identifier
// is already present. The emitted cart.stored notification is best-effort
// telemetry; a crash after the insert leaves the row durable with the
// notification unsent.
func (c *Cart) Store(identifier string) error {
	if c.store == nil {
		return types.ErrNoCartStore
	}

	exists, err := c.store.Exists(identifier)
	if err != nil {
		return fmt.Errorf("checking stored cart %s: %w", identifier, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", types.ErrAlreadyStored, identifier)
	}

	blob, err := json.Marshal(c.Content())
	if err != nil {
		return fmt.Errorf("serializing cart content: %w", err)
	}

	if err := c.store.Insert(types.StoredCart{
		Identifier: identifier,
		Instance:   c.Instance(),
		Content:    blob,
	}); err != nil {
		return fmt.Errorf("storing cart %s: %w", identifier, err)
	}

	c.events.Emit(types.EventStored, identifier)
	return nil
}

// Restore loads the snapshot stored under identifier into the instance it
// was recorded for, switching the active instance for the write and back
// afterward. Rows are overwritten by identity without quantity merging:
// a restore reinstates a complete previous state rather than adding on
// top of the current one. The snapshot is consumed: it is deleted from
// the durable store after the session write. Restoring an unknown
// identifier is a silent no-op.
func (c *Cart) Restore(identifier string) error {
	if c.store == nil {
		return types.ErrNoCartStore
	}

	exists, err := c.store.Exists(identifier)
	if err != nil {
		return fmt.Errorf("checking stored cart %s: %w", identifier, err)
	}
	if !exists {
		return nil
	}

	stored, err := c.store.Get(identifier)
	if err != nil {
		return fmt.Errorf("loading stored cart %s: %w", identifier, err)
	}

	var snapshot types.Content
	if err := json.Unmarshal(stored.Content, &snapshot); err != nil {
		return fmt.Errorf("decoding stored cart %s: %w", identifier, err)
	}
	snapshot.Init()

	current := c.Instance()
	c.SetInstance(stored.Instance)

	content := c.Content()
	for rowID, li := range snapshot.Items {
		content.Items[rowID] = li
	}
	for rowID, li := range snapshot.Details {
		content.Details[rowID] = li
	}
	for key, value := range snapshot.Attributes {
		content.Attributes[key] = value
	}

	c.events.Emit(types.EventRestored, identifier)
	c.persist(content)

	c.SetInstance(current)

	if err := c.store.Delete(identifier); err != nil {
		return fmt.Errorf("deleting stored cart %s: %w", identifier, err)
	}
	return nil
}
