package vector

// Range primitives over slot slices. Each one either completes or leaves
// dst fully dead: a failure destroys whatever the call itself built.

// constructN default-constructs every slot of dst.
func constructN[T any](ops *elementOps[T], dst []T) error {
	for i := range dst {
		if err := ops.construct(&dst[i]); err != nil {
			destroyN(ops, dst[:i])
			return err
		}
	}
	return nil
}

// transferN constructs dst[i] from src[i] with f, which is one of the
// copy or move constructors. len(dst) must equal len(src).
func transferN[T any](ops *elementOps[T], f func(dst, src *T) error, dst, src []T) error {
	if ops.trivial {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := f(&dst[i], &src[i]); err != nil {
			destroyN(ops, dst[:i])
			return err
		}
	}
	return nil
}

// assignN assigns src[i] onto the live dst[i] with f. There is no rollback:
// on failure the slots assigned so far keep their new values.
func assignN[T any](ops *elementOps[T], f func(dst, src *T) error, dst, src []T) error {
	if ops.trivial {
		copy(dst, src)
		return nil
	}
	for i := range src {
		if err := f(&dst[i], &src[i]); err != nil {
			return err
		}
	}
	return nil
}

// destroyN ends the lifetime of every slot in s, last first.
func destroyN[T any](ops *elementOps[T], s []T) {
	if ops.trivial {
		clear(s)
		return
	}
	for i := len(s) - 1; i >= 0; i-- {
		ops.destroy(&s[i])
	}
}
