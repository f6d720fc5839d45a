package pipeline

// Context carries the batch-scoped state the uniqueness stage reads: the
// set of transaction IDs already decided in this batch.
type Context struct {
	seenIDs map[string]struct{}
}

// NewContext creates an empty batch context.
func NewContext() *Context {
	return &Context{seenIDs: make(map[string]struct{})}
}

func (c *Context) seen(id string) bool {
	_, ok := c.seenIDs[id]
	return ok
}

func (c *Context) mark(id string) {
	c.seenIDs[id] = struct{}{}
}
