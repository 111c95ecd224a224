package locale

// The active locale is process-wide mutable state, mirroring the ambient
// locale model of C runtimes. Switching it while other goroutines format or
// parse concurrently is a race the caller must avoid; the scoped form below
// narrows the exposure but does not remove it.
var active = MustResolve("en-US")

// Active returns the process-wide locale used when no explicit Info is given.
func Active() *Info { return active }

// SetActive replaces the process-wide locale and returns the previous one.
func SetActive(info *Info) *Info {
	prev := active
	active = info
	return prev
}

// WithLocale runs fn with the named locale active, restoring the previous
// active locale afterward even when fn fails.
func WithLocale(name string, fn func() error) error {
	info, err := Resolve(name)
	if err != nil {
		return err
	}
	prev := SetActive(info)
	defer SetActive(prev)
	return fn()
}
