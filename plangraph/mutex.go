package plangraph

import "slices"

// The predicates below are pure: they see only the precondition, effect and
// producer sets involved plus a read-only view of the parent layer's mutex
// relation. Sets are sorted literal/action id slices.

// contains reports whether the sorted set holds id.
func contains[T ~int](set []T, id T) bool {
	_, ok := slices.BinarySearch(set, id)
	return ok
}

// negatesAny reports whether some literal of a is the negation of a literal of b.
func negatesAny(a, b []literalID) bool {
	for _, l := range a {
		if contains(b, l.negate()) {
			return true
		}
	}

	return false
}

// inconsistentEffects: an effect of one action negates an effect of the other.
func inconsistentEffects(effA, effB []literalID) bool {
	return negatesAny(effA, effB)
}

// interference: an effect of either action negates a precondition of the other.
func interference(preA, effA, preB, effB []literalID) bool {
	return negatesAny(effA, preB) || negatesAny(effB, preA)
}

// competingNeeds: every precondition pair (one from each action) is mutex in
// the parent literal layer, in both argument orders. Actions without
// preconditions never compete.
func competingNeeds(preA, preB []literalID, parentMutex func(a, b literalID) bool) bool {
	if len(preA) == 0 || len(preB) == 0 {
		return false
	}
	for _, x := range preA {
		for _, y := range preB {
			if !parentMutex(x, y) || !parentMutex(y, x) {
				return false
			}
		}
	}

	return true
}

// negation: the two literals are logical negations of each other.
func negation(a, b literalID) bool {
	return a.negate() == b
}

// inconsistentSupport: every producer of a is mutex with every producer of b
// in the parent action layer, in both argument orders. A literal without
// producers is never support-mutex.
func inconsistentSupport(prodA, prodB []actionID, parentMutex func(a, b actionID) bool) bool {
	if len(prodA) == 0 || len(prodB) == 0 {
		return false
	}
	for _, x := range prodA {
		for _, y := range prodB {
			if !parentMutex(x, y) || !parentMutex(y, x) {
				return false
			}
		}
	}

	return true
}

// actionsMutex combines the action predicates. With serialize set, any two
// non-persistence actions are mutex.
func actionsMutex(a, b *actionNode, serialize bool, parentMutex func(x, y literalID) bool) bool {
	if serialize && !a.persistence && !b.persistence {
		return true
	}

	return inconsistentEffects(a.eff, b.eff) ||
		interference(a.pre, a.eff, b.pre, b.eff) ||
		competingNeeds(a.pre, b.pre, parentMutex)
}

// updateActionMutexes fills layer.mutex from the parent literal layer.
func (d *Domain) updateActionMutexes(layer *actionLayer, parent *literalLayer, serialize bool) {
	for i, a := range layer.members {
		na := &d.actions[a]
		for _, b := range layer.members[i+1:] {
			if actionsMutex(na, &d.actions[b], serialize, parent.mutex.has) {
				layer.mutex.set(a, b)
			}
		}
	}
}

// updateLiteralMutexes fills layer.mutex. parentMutex is the producing action
// layer's relation, or nil at level 0 where only negation applies.
func updateLiteralMutexes(layer *literalLayer, parentMutex func(a, b actionID) bool) {
	for i, a := range layer.members {
		for _, b := range layer.members[i+1:] {
			if negation(a, b) ||
				(parentMutex != nil && inconsistentSupport(layer.producers[a], layer.producers[b], parentMutex)) {
				layer.mutex.set(a, b)
			}
		}
	}
}
