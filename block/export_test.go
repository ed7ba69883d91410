package block

// NewState exposes state construction for classifier and reconciler tests.
func NewState(cfg Config) *State {
	return newState(cfg)
}

// Classify exposes the line classifier for tests.
func (st *State) Classify(line string) ([]*Instance, string) {
	return st.classify(line)
}

// Reconcile exposes the stack reconciler for tests.
func (st *State) Reconcile(insts []*Instance) int {
	return st.reconcile(insts)
}

// Dispatch exposes residual-text dispatch for tests.
func (st *State) Dispatch(rest string) {
	st.dispatch(rest)
}

// Depth exposes the open-stack depth for tests.
func (st *State) Depth() int {
	return len(st.stack)
}

// Kind exposes an instance's kind for tests.
func (in *Instance) Kind() Kind {
	return in.kind
}

// ID exposes an instance's id for tests.
func (in *Instance) ID() int {
	return in.id
}

// Ordered exposes a list's ordering flag for tests.
func (in *Instance) Ordered() bool {
	return in.ordered
}
