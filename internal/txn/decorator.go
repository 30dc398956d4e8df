package txn

import "context"

// Method is a service call shaped for transactional wrapping: a context,
// variadic arguments, one result, one error.
type Method func(ctx context.Context, args ...any) (any, error)

// Transactional wraps method so every call runs inside its own managed
// transaction. When the caller already passes a live *Context as the final
// argument, the call joins that transaction instead of opening a nested one.
//
// Detection is shallow: only the direct final argument is inspected. A
// transaction context buried inside a struct or slice argument does not
// count, and the call gets a fresh transaction.
func (m *Manager) Transactional(method Method, opts *Options) Method {
	return func(ctx context.Context, args ...any) (any, error) {
		if len(args) > 0 {
			if txc, ok := args[len(args)-1].(*Context); ok && txc != nil {
				if !m.isActive(txc) {
					return nil, &UnknownTransactionError{ID: txc.ID}
				}
				return method(ctx, args...)
			}
		}
		return m.Execute(ctx, func(txCtx context.Context, txc *Context) (any, error) {
			return method(txCtx, append(args, txc)...)
		}, opts)
	}
}
