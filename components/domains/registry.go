package domains

import (
	"fmt"
	"sort"

	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
)

type entry struct {
	function awslambda.IFunction
	name     string
}

// Registry maps function keys to deployed functions.
type Registry struct {
	entries map[Key]entry
	order   []Key
}

func NewRegistry() *Registry {
	return &Registry{entries: map[Key]entry{}}
}

// Add registers a function. Registering the same key twice panics.
func (r *Registry) Add(key Key, fn awslambda.IFunction, functionName string) {
	if _, ok := r.entries[key]; ok {
		panic(fmt.Sprintf("function key registered twice: %s", key))
	}
	r.entries[key] = entry{function: fn, name: functionName}
	r.order = append(r.order, key)
}

func (r *Registry) Get(key Key) (awslambda.IFunction, bool) {
	e, ok := r.entries[key]
	return e.function, ok
}

// FunctionName is the physical name chosen for the key.
func (r *Registry) FunctionName(key Key) (string, bool) {
	e, ok := r.entries[key]
	return e.name, ok
}

func (r *Registry) Has(key Key) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns keys in registration order.
func (r *Registry) Keys() []Key {
	return append([]Key(nil), r.order...)
}

func (r *Registry) Len() int { return len(r.order) }

// Merge copies every entry of the given registries into r.
func (r *Registry) Merge(others ...*Registry) *Registry {
	for _, o := range others {
		if o == nil {
			continue
		}
		for _, key := range o.order {
			e := o.entries[key]
			r.Add(key, e.function, e.name)
		}
	}
	return r
}

// SortedKeys is Keys in lexical order.
func (r *Registry) SortedKeys() []Key {
	keys := r.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
