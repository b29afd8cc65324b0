// Package observe provides a minimal observable value container with
// synchronous, ordered change delivery.
//
// A Value holds a single item of any type. Subscribers registered with
// Subscribe are invoked immediately with the current value and then once for
// every subsequent Set, in subscription order, on the stack of whichever
// goroutine performed the write. There is no batching, deferral, or
// deduplication: every write is delivered, even when the new value equals
// the old one.
//
// # Usage
//
//	lang := observe.NewValue("en")
//
//	unsubscribe := lang.Subscribe(func(v string) {
//		fmt.Println("active language:", v)
//	})
//	defer unsubscribe()
//
//	lang.Set("es") // subscriber runs inline before Set returns
//
// Values are safe for concurrent use. Callbacks run outside the internal
// lock, so a subscriber may read or write the same Value (or another one)
// without deadlocking.
package observe
