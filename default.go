package covenant

// Default is the shared registry behind the package-level functions.
var Default = New()

// On registers cb for name on the Default registry.
func On(name string, cb Callback) (ListenerID, error) {
	return Default.Register(name, cb)
}

// Once registers a one-shot cb for name on the Default registry.
func Once(name string, cb Callback) (ListenerID, error) {
	return Default.RegisterOnce(name, cb)
}

// Signal signals name on the Default registry.
func Signal(name string, args ...any) *Registry {
	return Default.Signal(name, args...)
}

// Off unregisters from the Default registry. See Registry.Off.
func Off(name string, target any) *Registry {
	return Default.Off(name, target)
}
