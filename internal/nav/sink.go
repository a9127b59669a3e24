package nav

// Sink receives visual and focus state changes. Implementations translate them
// into concrete mutations (class attributes, tab order, rendered rows).
type Sink interface {
	// OnActivationChanged is called when the active node changes. prev is nil
	// when nothing was active before.
	OnActivationChanged(next, prev *Node)
	// OnExpansionChanged is called after a branch toggles. affected lists the
	// direct children whose focus reachability now equals expanded.
	OnExpansionChanged(branch *Node, expanded bool, affected []*Node)
}

// Sinks fans notifications out to several sinks in order.
type Sinks []Sink

func (s Sinks) OnActivationChanged(next, prev *Node) {
	for _, sink := range s {
		if sink != nil {
			sink.OnActivationChanged(next, prev)
		}
	}
}

func (s Sinks) OnExpansionChanged(branch *Node, expanded bool, affected []*Node) {
	for _, sink := range s {
		if sink != nil {
			sink.OnExpansionChanged(branch, expanded, affected)
		}
	}
}

// NopSink discards every notification.
type NopSink struct{}

func (NopSink) OnActivationChanged(*Node, *Node)        {}
func (NopSink) OnExpansionChanged(*Node, bool, []*Node) {}
