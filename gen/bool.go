package gen

// Bool generates boolean values uniformly. Shrinks true towards false —
// false is the conventionally "simpler" boolean.
func Bool() Generator[bool] {
	return FromReshrinkable(func(r *Rand, _ Size) (bool, Shrinker[bool]) {
		v := r.Intn(2) == 0
		return v, boolShrink(v)
	}, boolShrink)
}

// boolShrink shrinks true towards false; false has no further shrinks.
func boolShrink(v bool) Shrinker[bool] {
	if !v {
		return queueShrinker[bool](nil)
	}
	return queueShrinker([]bool{false})
}
