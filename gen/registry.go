package gen

import (
	"reflect"
	"sync"
)

// registry is a reflect.Type-keyed lookup from a type to the factory
// producing its (Generator[T], by way of Size) arbitrary. Reads
// dominate writes once built-ins are registered, hence RWMutex.
type registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]func(Size) any
}

var defaultRegistry = &registry{byType: make(map[reflect.Type]func(Size) any)}

func init() {
	registerBuiltins()
}

// Default returns the package-level Arbitrary Registry.
func Default() *registry { return defaultRegistry }

func typeOf[T any]() reflect.Type {
	var z T
	return reflect.TypeOf(&z).Elem()
}

func (r *registry) set(t reflect.Type, factory func(Size) any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byType[t]; ok {
		return AlreadyRegistered{Type: t.String()}
	}
	r.byType[t] = factory
	return nil
}

func (r *registry) replace(t reflect.Type, factory func(Size) any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType[t] = factory
}

func (r *registry) lookup(t reflect.Type) (func(Size) any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byType[t]
	return f, ok
}

// Register installs g as the arbitrary for T, ignoring Size. Panics
// with AlreadyRegistered if T already has an arbitrary — use
// RegisterFactory with Overwrite to replace one deliberately.
func Register[T any](g Generator[T]) {
	t := typeOf[T]()
	err := defaultRegistry.set(t, func(Size) any { return g })
	if err != nil {
		panic(err)
	}
	deriveGenericHeads[T](func(Size) Generator[T] { return g })
}

// RegisterFactory installs factory as the arbitrary for T, invoked
// with the Size in effect at draw time. Panics with AlreadyRegistered
// if T already has an arbitrary.
//
// Registering T also derives and installs the arbitraries for T's two
// generic heads, []T and *T, recursively instantiated from factory —
// this is how the registry satisfies ForAllT[[]T]() and ForAllT[*T]()
// without a separate, explicit registration for either. A generic
// head already registered explicitly (or derived by an earlier call)
// is left untouched.
func RegisterFactory[T any](factory func(Size) Generator[T]) {
	t := typeOf[T]()
	err := defaultRegistry.set(t, func(sz Size) any { return factory(sz) })
	if err != nil {
		panic(err)
	}
	deriveGenericHeads[T](factory)
}

// Overwrite installs factory as the arbitrary for T unconditionally,
// replacing any existing registration, and derives []T/*T the same way
// RegisterFactory does: heads already present, including those derived
// when T was first registered, are kept and still draw from the earlier
// factory.
func Overwrite[T any](factory func(Size) Generator[T]) {
	t := typeOf[T]()
	defaultRegistry.replace(t, func(sz Size) any { return factory(sz) })
	deriveGenericHeads[T](factory)
}

// deriveGenericHeads installs the arbitraries for []T and *T, each
// keyed on its own reflect.Type (T's generic head) and instantiated
// recursively from factory — SliceOf and ptrOf both draw and shrink in
// terms of the T arbitrary they wrap. Either head is skipped if
// something is already registered for it.
func deriveGenericHeads[T any](factory func(Size) Generator[T]) {
	sliceT := typeOf[[]T]()
	if _, ok := defaultRegistry.lookup(sliceT); !ok {
		defaultRegistry.replace(sliceT, func(sz Size) any {
			return SliceOf[T](factory(sz), sz)
		})
	}
	ptrT := typeOf[*T]()
	if _, ok := defaultRegistry.lookup(ptrT); !ok {
		defaultRegistry.replace(ptrT, func(sz Size) any {
			return ptrOf[T](factory(sz))
		})
	}
}

// Get looks up the arbitrary registered for T and instantiates it at
// the given Size. Returns NotRegistered if T has no arbitrary.
func Get[T any](sz Size) (Generator[T], error) {
	t := typeOf[T]()
	f, ok := defaultRegistry.lookup(t)
	if !ok {
		return nil, NotRegistered{Type: t.String()}
	}
	g, ok := f(sz).(Generator[T])
	if !ok {
		return nil, NotRegistered{Type: t.String()}
	}
	return g, nil
}

// registerBuiltins seeds the default registry with arbitraries for the
// primitive types every property test eventually needs, so callers
// only have to call Register for domain-specific types.
func registerBuiltins() {
	RegisterFactory[int](func(sz Size) Generator[int] { return Int(sz) })
	RegisterFactory[int64](func(sz Size) Generator[int64] { return Int64(sz) })
	RegisterFactory[uint](func(sz Size) Generator[uint] { return Uint(sz) })
	RegisterFactory[uint64](func(sz Size) Generator[uint64] { return Uint64(sz) })
	RegisterFactory[float32](func(sz Size) Generator[float32] { return Float32(sz) })
	RegisterFactory[float64](func(sz Size) Generator[float64] { return Float64(sz) })
	RegisterFactory[bool](func(Size) Generator[bool] { return Bool() })
	RegisterFactory[rune](func(Size) Generator[rune] { return Char() })
	RegisterFactory[string](func(sz Size) Generator[string] { return String(AlphabetAlphaNum, sz) })
}
