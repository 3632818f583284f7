package node

// cache memoizes node construction per distinct type name for the duration of
// a single Build call. It is never shared across builds, so one request's
// types cannot pollute another's.
type cache struct {
	built      map[string]*Node
	inProgress map[string]struct{}
}

func newCache() *cache {
	return &cache{
		built:      make(map[string]*Node),
		inProgress: make(map[string]struct{}),
	}
}

// lookup returns the completed node for name, or a bounded placeholder when
// name is currently under construction. The placeholder breaks type cycles:
// it carries only the type name as description, trading structural depth at
// the recursive edge for guaranteed termination.
func (c *cache) lookup(name string) (*Node, bool) {
	if node, ok := c.built[name]; ok {
		return node, true
	}
	if _, busy := c.inProgress[name]; busy {
		return &Node{Kind: KindObject, Description: name}, true
	}
	return nil, false
}

func (c *cache) begin(name string) {
	c.inProgress[name] = struct{}{}
}

func (c *cache) finish(name string, node *Node) {
	delete(c.inProgress, name)
	c.built[name] = node
}

func (c *cache) abandon(name string) {
	delete(c.inProgress, name)
}
