package observable

import "context"

// Observer is the interface all observers of a subject must implement.
// It is generic over the concrete subject type, so an observer is bound to
// the kind of subject it serves at construction time and never needs to
// inspect the runtime type of the value it is handed.
//
// Update is invoked synchronously each time the subject's state changes.
// The subject reference is valid for the duration of the call and the
// subject's state will not change again until Update returns. Observers
// must not retain the reference beyond the call unless they explicitly
// choose to.
type Observer[S any] interface {
	Update(ctx context.Context, subject S) error
}

// Observable is the subject-side contract for managing observers.
type Observable[S any] interface {
	AddObserver(Observer[S])
	RemoveObserver(Observer[S])
}
