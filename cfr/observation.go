package cfr

import "fmt"

// Observation is a chance node. Each child is one outcome of a hidden event,
// here the deal, and one outcome is sampled per visit.
type Observation struct {
	name     string
	children []Node
}

func NewObservation(name string) *Observation {
	return &Observation{name: name}
}

func (o *Observation) Name() string {
	return o.name
}

func (o *Observation) Children() []Node {
	return o.children
}

func (o *Observation) AddChild(child Node) {
	if child == nil {
		panic(fmt.Sprintf("observation %s: nil outcome", o.name))
	}
	o.children = append(o.children, child)
}

// observeUtility follows a single sampled outcome. The other outcomes are
// not averaged in: repeated iterations approximate the expectation over
// deals. Being the root, it has no utility to report.
func (o *Observation) observeUtility(w *walker, reach Reach) float64 {
	if len(o.children) == 0 {
		panic(fmt.Sprintf("observation %s has no outcomes", o.name))
	}
	w.metrics.AddObservation()

	child := o.children[w.sampler.Intn(len(o.children))]
	child.observeUtility(w, reach)
	return 0
}
