// Package engine implements the list state engine behind the item list
// widget. A List owns the ordered item sequence bound to a hidden field and
// is the only place it changes.
//
// Each mutation (Initialize, SetAll, SetVal, Clear, Add, AddKeyed, Remove,
// Update, Reorder) records exactly one tagged Change and hands it to the View
// before returning, so the rendered rows always match the sequence once a call
// completes. A notifying mutation then writes Adapter.Process(sequence) to the
// field and fires EventChange. Reconciliation is never deferred or batched:
// the view infers nothing and applies the change it is given.
//
// Notifications reach the typed Listeners given at construction and any
// subscribers of a caller-owned Bus. They are observation only; a listener
// that tries to mutate the list gets ErrReentrant.
package engine
