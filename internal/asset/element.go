package asset

// Element is a basic render-tree node carrying both asset slots and a child
// map. Host renderers typically bring their own Node implementations; this
// one backs the offline-readiness check and keeps a reference
// implementation of the capability interfaces in one place.
type Element struct {
	Scripts []Ref
	Styles  []Ref
	Kids    map[string]Node
}

var (
	_ Node         = (*Element)(nil)
	_ ScriptHolder = (*Element)(nil)
	_ StyleHolder  = (*Element)(nil)
)

// NewElement creates an empty element.
func NewElement() *Element {
	return &Element{}
}

// FromGroup creates an element carrying a group's default assets.
func FromGroup(g Group) *Element {
	return &Element{
		Scripts: append([]Ref(nil), g.Scripts...),
		Styles:  append([]Ref(nil), g.Styles...),
	}
}

// AddChild attaches a child under the given key, allocating the child map
// on first use.
func (e *Element) AddChild(key string, child Node) {
	if e.Kids == nil {
		e.Kids = make(map[string]Node)
	}
	e.Kids[key] = child
}

func (e *Element) Children() map[string]Node { return e.Kids }

func (e *Element) ScriptAssets() []Ref        { return e.Scripts }
func (e *Element) SetScriptAssets(refs []Ref) { e.Scripts = refs }

func (e *Element) StyleAssets() []Ref        { return e.Styles }
func (e *Element) SetStyleAssets(refs []Ref) { e.Styles = refs }
