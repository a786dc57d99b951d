package asset

// urlResolver is the part of Resolver the Rewriter depends on. Tests
// substitute a counting implementation to assert visit semantics.
type urlResolver interface {
	Resolve(url string) (string, bool)
}

// Rewriter walks a render tree and substitutes cached local paths into
// every asset ref the resolver can satisfy, leaving the rest untouched.
//
// Each Rewrite call is an independent traversal with a fresh visited set:
// shared subtrees are rewritten exactly once, and cycles terminate. Calling
// Rewrite again on an already-rewritten tree is a no-op, because rewritten
// locators no longer pass the http(s) gate inside the resolver.
type Rewriter struct {
	resolver urlResolver
}

// NewRewriter creates a Rewriter backed by the given resolver.
func NewRewriter(r *Resolver) *Rewriter {
	return &Rewriter{resolver: r}
}

// Rewrite mutates the tree rooted at root in place. A nil root is a no-op.
func (w *Rewriter) Rewrite(root Node) {
	if root == nil {
		return
	}
	visited := make(map[Node]struct{})
	w.walk(root, visited)
}

// walk marks the node before recursing so that self-referential children
// short-circuit instead of looping.
func (w *Rewriter) walk(node Node, visited map[Node]struct{}) {
	if node == nil {
		return
	}
	if _, seen := visited[node]; seen {
		return
	}
	visited[node] = struct{}{}

	if h, ok := node.(ScriptHolder); ok {
		h.SetScriptAssets(w.rewriteRefs(h.ScriptAssets()))
	}
	if h, ok := node.(StyleHolder); ok {
		h.SetStyleAssets(w.rewriteRefs(h.StyleAssets()))
	}

	for _, child := range node.Children() {
		w.walk(child, visited)
	}
}

// rewriteRefs substitutes locators one-for-one, preserving order and
// length. Refs the resolver cannot satisfy are carried over unchanged.
func (w *Rewriter) rewriteRefs(refs []Ref) []Ref {
	if len(refs) == 0 {
		return refs
	}
	out := make([]Ref, len(refs))
	for i, ref := range refs {
		if local, ok := w.resolver.Resolve(ref.URL); ok {
			out[i] = Ref{Name: ref.Name, URL: local}
		} else {
			out[i] = ref
		}
	}
	return out
}
