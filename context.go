package uast

import "sync/atomic"

// Context binds a NodeInterface implementation and a role lookup
// together so repeated filter calls over the same host don't have to
// pass both every time. It owns no host state and holds no lock on the
// tree; it is safe for concurrent FilterNodes/FilterBool/FilterNumber/
// FilterString calls, including concurrent calls over different roots.
//
// Mirrors the C original's UastFree/UastNew ref-counted handle, minus
// the global xmlInitParser/xmlCleanupParser bookkeeping: the pure-Go
// xpath engine has no process-global state to initialize, so Close is a
// documented no-op kept only to preserve the lifecycle contract.
type Context struct {
	iface     NodeInterface
	roles     RoleLookup
	lastError atomic.Value // stores errBox
}

// errBox gives every Store call the same concrete type: atomic.Value
// panics if consecutive Store calls carry differing concrete types, and
// the errors recorded here (sentinel, wrapped, and %w-chained) otherwise
// would not share one.
type errBox struct {
	err error
}

// NewContext builds a Context over iface. roles may be nil, in which
// case no role id resolves to a name (NoRoles). iface must not be nil;
// a nil host contract is a programmer error, not a recoverable one.
func NewContext(iface NodeInterface, roles RoleLookup) *Context {
	if iface == nil {
		panic("uast: iface must not be nil")
	}

	if roles == nil {
		roles = NoRoles
	}

	return &Context{iface: iface, roles: roles}
}

// Close releases any resources held by ctx. It is currently a no-op;
// kept so callers can write defer ctx.Close() and stay correct if a
// future NodeInterface implementation needs teardown.
func (ctx *Context) Close() {}

// recordError stores err as the most recent failure observed by ctx,
// overwriting whatever was stored before. Concurrent failures race on
// which one wins the slot, same as the spec's documented
// "unspecified contents" guarantee — atomic.Value just makes the race
// safe instead of undefined.
func (ctx *Context) recordError(err error) {
	ctx.lastError.Store(errBox{err: err})
}

// LastError returns the most recently recorded error, or nil if no
// filter call on ctx has failed yet.
func (ctx *Context) LastError() error {
	v := ctx.lastError.Load()
	if v == nil {
		return nil
	}

	box, _ := v.(errBox)

	return box.err
}
