package word

// Composite is an ordered sequence of word pointers; invoking it invokes
// each child in order. A LEAVE (ErrLeave) unwinds through a composite
// transparently — it is simply returned up like any other error, and only a
// loop boundary (DoLoop/BeginLoop) treats it specially.
type Composite struct {
	WordName string
	Children []Node
}

// NewComposite returns an empty composite named name.
func NewComposite(name string) *Composite {
	return &Composite{WordName: name}
}

// Append adds n as the next child.
func (c *Composite) Append(n Node) { c.Children = append(c.Children, n) }

func (c *Composite) Invoke(m Machine) error {
	for _, child := range c.Children {
		if err := child.Invoke(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composite) Name() string { return c.WordName }
