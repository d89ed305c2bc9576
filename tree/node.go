package tree

/*
Node is a node of a grown tree. It has exactly two forms: a Leaf
holding a predicted class, or a Decision holding a feature test and
exclusive ownership of its two children. The interface is sealed so
that no other form can exist.
*/
type Node interface {
	isNode()
}

// Leaf is a terminal node holding the class predicted for every sample
// that reaches it.
type Leaf struct {
	Class int
}

/*
Decision is an internal node that tests a sample's value for a feature
column against a threshold: samples with a value less than or equal to
the threshold descend into the Left child, the rest into the Right one.
Both children are always non-nil in a grown tree.
*/
type Decision struct {
	Feature   int
	Threshold float64
	Left      Node
	Right     Node
}

func (*Leaf) isNode()     {}
func (*Decision) isNode() {}
