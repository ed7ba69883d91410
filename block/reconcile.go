package block

// reconcile mutates the open stack to match the newly classified command
// sequence and returns the length of the shared prefix that was kept.
//
// The shared prefix stops at the first position where kinds differ or
// where the kind's continuation predicate rejects the pairing. Identical
// pointers always continue: the classifier hands back the very instances
// already on the stack for lazy list-item continuation and open code
// fences. Frames beyond the prefix are closed deepest-first, then the new
// suffix is opened shallowest-first, so the stack is never left torn down
// between lines.
func (st *State) reconcile(insts []*Instance) int {
	keep := 0
	for keep < len(st.stack) && keep < len(insts) {
		old, neu := st.stack[keep], insts[keep]
		if old == neu {
			keep++
			continue
		}
		if old.kind != neu.kind {
			break
		}
		cont := commands[neu.kind].continues
		if cont == nil || !cont(old, neu, st.stack[keep:], insts[keep:]) {
			break
		}
		keep++
	}
	for len(st.stack) > keep {
		st.pop()
	}
	for _, in := range insts[keep:] {
		st.push(in)
	}
	return keep
}

// dispatch feeds the residual text of the current line to the innermost
// open frame. Kinds without a text hook absorb the line silently; that is
// how container kinds pass text through to their nested children.
func (st *State) dispatch(rest string) {
	top := st.top()
	if top == nil {
		return
	}
	if h := commands[top.kind].text; h != nil {
		h(st, top, rest)
	}
}

// listContinues keeps an open list unless this position is the deepest
// list in the new sequence, in which case the ordering flag must match.
func listContinues(old, neu *Instance, _, neus []*Instance) bool {
	for _, in := range neus[1:] {
		if in.kind == KindList {
			return true
		}
	}
	return old.ordered == neu.ordered
}

// itemContinues keeps an open list item unless it is the deepest item in
// the new sequence, which must be the same instance (id equality) to
// survive. Fresh classifications mint fresh ids, so a marker line always
// opens a new item while outer items on the same line continue freely.
func itemContinues(old, neu *Instance, _, neus []*Instance) bool {
	for _, in := range neus[1:] {
		if in.kind == KindListItem {
			return true
		}
	}
	return old.id == neu.id
}

// paragraphContinues keeps an open paragraph when the new line carries no
// alignment marker, or one equal to the committed alignment.
func paragraphContinues(old, neu *Instance, _, _ []*Instance) bool {
	return !neu.marked || neu.align == old.align
}
