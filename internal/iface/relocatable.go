package iface

import (
	"fmt"
	"reflect"
)

// Relocatable reports whether values of type t are plain relocatable data:
// safe to copy byte-for-byte into raw storage, relocate when that storage
// grows, and abandon without finalization.
//
// Any kind that places a pointer in the value's representation is rejected,
// for two reasons: arena bytes are invisible to the garbage collector, and a
// pointer-shaped type would be stored directly in an interface's data word,
// breaking the indirection Make relies on.
func Relocatable(t reflect.Type) error {
	return relocatable(t, t.String())
}

func relocatable(t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return relocatable(t.Elem(), path+"[...]")
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := relocatable(f.Type, path+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s holds a %s, which embeds a pointer", path, t.Kind())
	}
}
