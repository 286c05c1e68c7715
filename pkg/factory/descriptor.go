package factory

import (
	"fmt"
	"reflect"
	"strings"
)

// DescriptorKind is the shape of a raw cache setting.
type DescriptorKind int

const (
	// DescriptorAbsent means no cache is configured.
	DescriptorAbsent DescriptorKind = iota
	// DescriptorKey is a service key to resolve through the Locator.
	DescriptorKey
	// DescriptorHandle is a cache value given directly.
	DescriptorHandle
)

func (k DescriptorKind) String() string {
	switch k {
	case DescriptorKey:
		return "key"
	case DescriptorHandle:
		return "handle"
	default:
		return "absent"
	}
}

// Descriptor is the cache setting after its shape has been decided.
type Descriptor struct {
	kind   DescriptorKind
	key    string
	handle any
}

// DescriptorOf classifies a raw cache setting. Nil and blank strings are
// absent. Other strings, named string types included, are service keys and
// are looked up exactly as given. Anything else is a direct handle.
func DescriptorOf(v any) Descriptor {
	if v == nil {
		return Descriptor{}
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		key := rv.String()
		if strings.TrimSpace(key) == "" {
			return Descriptor{}
		}
		return Descriptor{kind: DescriptorKey, key: key}
	}
	return Descriptor{kind: DescriptorHandle, handle: v}
}

// KeyDescriptor returns a service key descriptor.
func KeyDescriptor(key string) Descriptor { return DescriptorOf(key) }

// HandleDescriptor returns a direct handle descriptor. A nil handle is absent.
func HandleDescriptor(h any) Descriptor {
	if h == nil {
		return Descriptor{}
	}
	return Descriptor{kind: DescriptorHandle, handle: h}
}

// Kind returns the descriptor shape.
func (d Descriptor) Kind() DescriptorKind { return d.kind }

// Key returns the service key of a DescriptorKey.
func (d Descriptor) Key() string { return d.key }

// Handle returns the value of a DescriptorHandle.
func (d Descriptor) Handle() any { return d.handle }

func (d Descriptor) String() string {
	switch d.kind {
	case DescriptorKey:
		return "key(" + d.key + ")"
	case DescriptorHandle:
		return fmt.Sprintf("handle(%T)", d.handle)
	default:
		return "absent"
	}
}
