package internal

// Subscribe links observer to observable: observer is added to
// observable's subscriber set and observable is added to observer's
// dependency set, if not already present. Idempotent (§4.1).
func Subscribe(observable Observable, observer *Computed) {
	observable.addSubscriber(observer)
	observer.addDependency(observable)
}

// Unsubscribe is the symmetric removal; tolerant of already-removed pairs.
func Unsubscribe(observable Observable, observer *Computed) {
	observable.removeSubscriber(observer)
	observer.removeDependency(observable)
}
