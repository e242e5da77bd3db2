// Package cart implements the session-backed shopping cart orchestrator.
// A Cart is a named view into a session-scoped content structure holding
// three partitions (items, details, attributes); every operation is a
// synchronous read-modify-write of one partition followed by a session
// write. Collaborators (session store, event dispatcher, durable cart
// store, model registry) are injected interfaces from pkg/types.
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/pkg/types"
)

// DefaultInstance is the cart instance used when no name is given.
const DefaultInstance = "default"

// instancePrefix namespaces cart session keys.
const instancePrefix = "cart."

// detailTaxRate is the fixed tax rate fraction applied to detail lines.
// Details always use this policy constant, never the configured item rate.
var detailTaxRate = decimal.NewFromFloat(0.60)

// Attribute is the payload emitted with attribute lifecycle events.
type Attribute struct {
	Key   string
	Value any
}

// Cart orchestrates one session-scoped shopping cart. It is request
// scoped and performs no internal locking; concurrent writers to the same
// session key resolve last-write-wins.
type Cart struct {
	session  types.SessionStore
	events   types.Dispatcher
	store    types.CartStore
	models   *types.ModelRegistry
	config   types.Config
	instance string
}

// New creates a cart bound to the given session store, dispatcher, and
// configuration. A nil dispatcher discards events. The cart starts on the
// configured default instance, or "default".
func New(session types.SessionStore, events types.Dispatcher, config types.Config) (*Cart, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if events == nil {
		events = types.NopDispatcher{}
	}
	c := &Cart{
		session: session,
		events:  events,
		config:  config,
	}
	name := config.DefaultInstance
	if name == "" {
		name = DefaultInstance
	}
	c.SetInstance(name)
	return c, nil
}

// SetStore attaches the durable store used by Store and Restore.
func (c *Cart) SetStore(store types.CartStore) { c.store = store }

// SetModelRegistry attaches the registry used to resolve type-name
// strings passed to Associate.
func (c *Cart) SetModelRegistry(r *types.ModelRegistry) { c.models = r }

// SetInstance switches the cart to the named instance. An empty name
// selects the default instance. Instances are independent carts under the
// same session.
func (c *Cart) SetInstance(name string) *Cart {
	if name == "" {
		name = DefaultInstance
	}
	c.instance = instancePrefix + name
	return c
}

// Instance returns the current instance name.
func (c *Cart) Instance() string {
	return strings.TrimPrefix(c.instance, instancePrefix)
}

// Content returns the cart's content structure, or a fresh empty one when
// the session holds nothing for this instance yet.
func (c *Cart) Content() *types.Content {
	if content, ok := c.session.Get(c.instance); ok && content != nil {
		content.Init()
		return content
	}
	return types.NewContent()
}

// persist writes the content structure back to the session.
func (c *Cart) persist(content *types.Content) {
	c.session.Put(c.instance, content)
}

// Items returns the items partition keyed by row identity.
func (c *Cart) Items() map[string]*types.LineItem { return c.Content().Items }

// Details returns the details partition keyed by row identity.
func (c *Cart) Details() map[string]*types.LineItem { return c.Content().Details }

// Attributes returns the attributes partition.
func (c *Cart) Attributes() map[string]any { return c.Content().Attributes }

// AddAttribute sets a free-form attribute on the cart and emits
// cart.attribute_added.
func (c *Cart) AddAttribute(key string, value any) {
	content := c.Content()
	content.Attributes[key] = value
	c.events.Emit(types.EventAttributeAdded, Attribute{Key: key, Value: value})
	c.persist(content)
}

// Attribute returns the attribute stored under key and whether it exists.
func (c *Cart) Attribute(key string) (any, bool) {
	v, ok := c.Content().Attributes[key]
	return v, ok
}

// RemoveAttribute deletes the attribute stored under key, reporting
// whether it was present. Removing an absent key emits nothing.
func (c *Cart) RemoveAttribute(key string) bool {
	content := c.Content()
	value, ok := content.Attributes[key]
	if !ok {
		return false
	}
	delete(content.Attributes, key)
	c.events.Emit(types.EventAttributeRemoved, Attribute{Key: key, Value: value})
	c.persist(content)
	return true
}

// ClearItems empties the items partition. Each partition clear is its own
// session write; a failure between clears leaves the others untouched.
func (c *Cart) ClearItems() {
	content := c.Content()
	content.Items = make(map[string]*types.LineItem)
	c.persist(content)
}

// ClearDetails empties the details partition.
func (c *Cart) ClearDetails() {
	content := c.Content()
	content.Details = make(map[string]*types.LineItem)
	c.persist(content)
}

// ClearAttributes empties the attributes partition.
func (c *Cart) ClearAttributes() {
	content := c.Content()
	content.Attributes = make(map[string]any)
	c.persist(content)
}

// Clear empties all three partitions.
func (c *Cart) Clear() {
	c.ClearItems()
	c.ClearDetails()
	c.ClearAttributes()
}

// Destroy removes the current instance's session entry entirely.
func (c *Cart) Destroy() {
	c.session.Remove(c.instance)
}

// HandleLogout destroys the cart when DestroyOnLogout is configured.
// Call it from the application's logout path.
func (c *Cart) HandleLogout() {
	if c.config.DestroyOnLogout {
		c.Destroy()
	}
}
