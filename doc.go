// Package covenant is an in-process, synchronous named-event dispatcher.
//
// Callbacks are registered against string event names and invoked, in registration order,
// every time the name is signaled:
//
//	r := covenant.New()
//	id, err := r.On("loaded", func(args ...any) {
//		fmt.Println("loaded", args...)
//	})
//	if err != nil {
//		return err
//	}
//	r.Signal("loaded", "index.html", 200)
//	r.Off("loaded", id)
//
// Registries are independent of each other. Default is a shared registry used by the
// package-level On, Once, Signal and Off functions.
package covenant
