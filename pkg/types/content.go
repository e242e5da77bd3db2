package types

// Content is the full state of one cart instance: the three independent
// partitions keyed by row identity (items, details) or by attribute name.
// It is created empty on first access and replaced wholesale on every
// mutation.
type Content struct {
	Items      map[string]*LineItem `json:"items"`
	Details    map[string]*LineItem `json:"details"`
	Attributes map[string]any       `json:"attributes"`
}

// NewContent returns an empty content structure with all partitions
// initialized.
func NewContent() *Content {
	return &Content{
		Items:      make(map[string]*LineItem),
		Details:    make(map[string]*LineItem),
		Attributes: make(map[string]any),
	}
}

// Init ensures all partitions are non-nil. Needed after JSON decoding,
// where empty partitions may arrive as null.
func (c *Content) Init() {
	if c.Items == nil {
		c.Items = make(map[string]*LineItem)
	}
	if c.Details == nil {
		c.Details = make(map[string]*LineItem)
	}
	if c.Attributes == nil {
		c.Attributes = make(map[string]any)
	}
}
