package statement

import (
	"fmt"
	"strings"
)

// Placeholder marks where the serialized table is substituted into a prompt.
const Placeholder = "{data}"

// Template pairs a document kind with its prompt skeleton. Templates are
// immutable once registered.
type Template struct {
	Kind   Kind
	Prompt string
}

// Render substitutes the serialized table into the placeholder. The data is
// inserted verbatim: nothing inside it is reinterpreted as formatting.
func (t Template) Render(data string) string {
	return strings.Replace(t.Prompt, Placeholder, data, 1)
}

// Registry holds the fixed mapping from document kind to prompt template.
// It is populated once at startup and read-only afterwards.
type Registry struct {
	templates map[Kind]Template
}

// NewRegistry builds the registry from the default prompts, applying any
// non-empty per-kind overrides. A prompt that does not contain exactly one
// placeholder is a configuration error: it fails construction (and therefore
// startup) rather than surfacing on a request.
func NewRegistry(overrides map[Kind]string) (*Registry, error) {
	templates := make(map[Kind]Template, len(defaultPrompts))
	for kind, prompt := range defaultPrompts {
		if o := overrides[kind]; o != "" {
			prompt = o
		}
		if n := strings.Count(prompt, Placeholder); n != 1 {
			return nil, fmt.Errorf("prompt template for %s must contain exactly one %s placeholder, found %d", kind, Placeholder, n)
		}
		templates[kind] = Template{Kind: kind, Prompt: prompt}
	}
	return &Registry{templates: templates}, nil
}

// Get returns the template registered for kind. A missing kind is a normal
// outcome reported through ok, since kinds may arrive from dynamic callers.
func (r *Registry) Get(kind Kind) (Template, bool) {
	t, ok := r.templates[kind]
	return t, ok
}
