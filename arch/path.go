package arch

import "strings"

// Path is the global identity of any architecture element: an ordered
// sequence of instance-name steps terminating at a component, a port, or a
// link. Paths are represented as a slash-joined string so that they remain
// comparable and usable directly as map keys, which the mappability oracle
// relies on heavily.
type Path string

// NewPath builds a Path from an ordered sequence of steps.
func NewPath(steps ...string) Path {
	return Path(strings.Join(steps, "/"))
}

// Child appends a step to the path.
func (p Path) Child(step string) Path {
	if p == "" {
		return Path(step)
	}
	return p + "/" + Path(step)
}

// Steps splits the path back into its instance-name sequence.
func (p Path) Steps() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), "/")
}

// Parent returns the path with its last step removed, and whether the
// path had a parent at all.
func (p Path) Parent() (Path, bool) {
	steps := p.Steps()
	if len(steps) <= 1 {
		return "", false
	}
	return NewPath(steps[:len(steps)-1]...), true
}

// Last returns the final step of the path.
func (p Path) Last() string {
	steps := p.Steps()
	if len(steps) == 0 {
		return ""
	}
	return steps[len(steps)-1]
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return string(p)
}
