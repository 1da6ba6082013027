package card

// Decorator enriches a parsed card after assembly, before it is handed to
// the caller.
type Decorator interface {
	Decorate(*Card) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Card) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(c *Card) error {
	return fn(c)
}

// AssignIDs returns a decorator that fills empty ids on built-in elements
// using the supplied generator. Host-registered and unknown elements are left
// untouched; their internals are theirs.
func AssignIDs(gen func() string) Decorator {
	return DecoratorFunc(func(c *Card) error {
		if gen == nil {
			return nil
		}
		c.WalkElements(func(el Element) {
			holder, ok := el.(interface{ baseRef() *BaseElement })
			if !ok {
				return
			}
			if b := holder.baseRef(); b.ID == "" {
				b.ID = gen()
			}
		})
		return nil
	})
}
