package iconbake

// Collection is a named, ordered group of objects. An object can be linked
// into several collections at once.
type Collection struct {
	Name    string
	objects []*Object
}

func NewCollection(name string) *Collection {
	return &Collection{Name: name}
}

// Objects returns the linked objects in link order.
func (c *Collection) Objects() []*Object {
	return append([]*Object(nil), c.objects...)
}

func (c *Collection) Has(o *Object) bool {
	for _, x := range c.objects {
		if x == o {
			return true
		}
	}
	return false
}

// Link adds o to the collection. Linking twice is a no-op.
func (c *Collection) Link(o *Object) {
	if c.Has(o) {
		return
	}
	c.objects = append(c.objects, o)
	o.collections = append(o.collections, c)
}

func (c *Collection) Unlink(o *Object) {
	for i, x := range c.objects {
		if x == o {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			break
		}
	}
	for i, x := range o.collections {
		if x == c {
			o.collections = append(o.collections[:i], o.collections[i+1:]...)
			break
		}
	}
}

// Lookup returns the linked object with the given name.
func (c *Collection) Lookup(name string) (*Object, bool) {
	for _, o := range c.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}
