package iface

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelocatable(t *testing.T) {
	type vec3 struct{ X, Y, Z float64 }
	type nested struct {
		ID    uint64
		Pos   vec3
		Flags [8]bool
	}

	ok := []any{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		uintptr(0),
		float32(0), float64(0),
		complex64(0), complex128(0),
		false,
		[4]int32{},
		vec3{},
		nested{},
		[3]nested{},
	}
	for _, v := range ok {
		assert.NoError(t, Relocatable(reflect.TypeOf(v)), "%T", v)
	}

	bad := []any{
		"",
		new(int),
		[]byte(nil),
		map[string]int(nil),
		(chan int)(nil),
		(func())(nil),
		time.Time{}, // wall clock carries a *Location
	}
	for _, v := range bad {
		assert.Error(t, Relocatable(reflect.TypeOf(v)), "%T", v)
	}
}

func TestRelocatableReportsFieldPath(t *testing.T) {
	type inner struct{ Name string }
	type outer struct {
		ID    int64
		Inner inner
	}

	err := Relocatable(reflect.TypeOf(outer{}))
	assert.ErrorContains(t, err, ".Inner.Name")
	assert.ErrorContains(t, err, "string")
}

func TestRelocatableInterfaceField(t *testing.T) {
	type carrier struct{ S fmt.Stringer }

	err := Relocatable(reflect.TypeOf(carrier{}))
	assert.ErrorContains(t, err, ".S")
}

func TestRelocatableArrayElement(t *testing.T) {
	err := Relocatable(reflect.TypeOf([4]*int{}))
	assert.ErrorContains(t, err, "[...]")
}
