package observable

import (
	"context"
	"errors"
	"sync"

	"github.com/turbot/go-kit/helpers"
)

// ObservableImpl provides a base implementation of the Observable interface.
// It should be embedded in every concrete subject implementation - the
// subject calls NotifyObservers on itself after each state change.
//
// Observers are kept in registration order and that order is the
// notification order. The same observer may be registered more than once;
// it is then notified once per registration.
type ObservableImpl[S any] struct {
	observerLock sync.RWMutex
	observers    []Observer[S]

	// when set, a failing observer does not end the notification pass
	continueOnError bool
}

// AddObserver registers an observer. It always succeeds - there is no
// uniqueness check, a second registration means a second notification per
// pass.
func (p *ObservableImpl[S]) AddObserver(o Observer[S]) {
	p.observerLock.Lock()
	p.observers = append(p.observers, o)
	p.observerLock.Unlock()
}

// RemoveObserver removes the first registration of the given observer,
// compared by interface identity. If the observer is not registered this is
// a no-op - callers that need to know must check membership themselves.
func (p *ObservableImpl[S]) RemoveObserver(o Observer[S]) {
	p.observerLock.Lock()
	defer p.observerLock.Unlock()

	for i, registered := range p.observers {
		if registered == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of current registrations (an observer
// registered twice counts twice).
func (p *ObservableImpl[S]) ObserverCount() int {
	p.observerLock.RLock()
	defer p.observerLock.RUnlock()
	return len(p.observers)
}

// SetContinueOnError switches the error policy for notification passes.
// The default (false) aborts the pass on the first Update error and returns
// it to the caller. When set, each observer call is isolated instead: a
// failing or panicking observer is recorded and the remaining observers are
// still notified, with the accumulated errors joined in the return value.
// The policy should be chosen once, before the subject is put to work.
func (p *ObservableImpl[S]) SetContinueOnError(continueOnError bool) {
	p.observerLock.Lock()
	defer p.observerLock.Unlock()
	p.continueOnError = continueOnError
}

// NotifyObservers notifies every registered observer, in registration
// order. The observer list is snapshotted at the start of the pass and the
// lock is released before any Update is invoked, so an observer may add or
// remove observers (including itself) from inside its Update callback -
// such changes take effect from the next pass, never this one.
func (p *ObservableImpl[S]) NotifyObservers(ctx context.Context, subject S) error {
	p.observerLock.RLock()
	snapshot := make([]Observer[S], len(p.observers))
	copy(snapshot, p.observers)
	continueOnError := p.continueOnError
	p.observerLock.RUnlock()

	if !continueOnError {
		for _, observer := range snapshot {
			if err := observer.Update(ctx, subject); err != nil {
				return err
			}
		}
		return nil
	}

	var notifyErrors []error
	for _, observer := range snapshot {
		if err := safeUpdate(ctx, observer, subject); err != nil {
			notifyErrors = append(notifyErrors, err)
		}
	}
	return errors.Join(notifyErrors...)
}

// safeUpdate invokes Update, converting a panic into an error so a single
// bad observer cannot take down an isolated notification pass.
func safeUpdate[S any](ctx context.Context, observer Observer[S], subject S) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
		}
	}()

	return observer.Update(ctx, subject)
}
