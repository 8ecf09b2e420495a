package runtime

// Equal compares two handles for equality, trying same-type value
// comparisons first, then a __eq__ dunder fallback on the left operand,
// then the None-vs-None rule, and finally failing.
func Equal(l, r Handle) (bool, error) {
	if ln, ok := TryAs[Number](l); ok {
		if rn, ok := TryAs[Number](r); ok {
			return ln.Val == rn.Val, nil
		}
	}
	if ls, ok := TryAs[String](l); ok {
		if rs, ok := TryAs[String](r); ok {
			return ls.Val == rs.Val, nil
		}
	}
	if lb, ok := TryAs[Bool](l); ok {
		if rb, ok := TryAs[Bool](r); ok {
			return lb.Val == rb.Val, nil
		}
	}
	if li, ok := TryAs[*ClassInstance](l); ok && li.HasMethod("__eq__", 1) {
		result, err := li.Call("__eq__", []Handle{r})
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	if l.IsNone() && r.IsNone() {
		return true, nil
	}
	return false, NewTypeError("cannot compare objects for equality")
}

// Less compares two handles for strict ordering, trying same-type value
// comparisons first, then a __lt__ dunder fallback on the left operand.
// Unlike Equal, there is no None-vs-None rule.
func Less(l, r Handle) (bool, error) {
	if ln, ok := TryAs[Number](l); ok {
		if rn, ok := TryAs[Number](r); ok {
			return ln.Val < rn.Val, nil
		}
	}
	if ls, ok := TryAs[String](l); ok {
		if rs, ok := TryAs[String](r); ok {
			return ls.Val < rs.Val, nil
		}
	}
	if lb, ok := TryAs[Bool](l); ok {
		if rb, ok := TryAs[Bool](r); ok {
			return !lb.Val && rb.Val, nil
		}
	}
	if li, ok := TryAs[*ClassInstance](l); ok && li.HasMethod("__lt__", 1) {
		result, err := li.Call("__lt__", []Handle{r})
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	return false, NewTypeError("cannot compare objects for less")
}

// NotEqual, LessOrEqual, Greater, and GreaterOrEqual are derived from
// Equal and Less by composition rather than their own dunder lookups.

func NotEqual(l, r Handle) (bool, error) {
	eq, err := Equal(l, r)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(l, r Handle) (bool, error) {
	lt, err := Less(r, l)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

func Greater(l, r Handle) (bool, error) {
	return Less(r, l)
}

func GreaterOrEqual(l, r Handle) (bool, error) {
	lt, err := Less(l, r)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
