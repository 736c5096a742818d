package memory

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestVirtualMemory(t *testing.T) {
	t.Run("reads back a C string", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.NewRegion(0x2000_0000, 0x1000)
		require.NoError(t, err)

		require.NoError(t, vm.WriteCString(0x2000_0010, "OK"))

		str, err := vm.ReadCString(0x2000_0010)
		require.NoError(t, err)
		require.Equal(t, []byte("OK"), str)
	})

	t.Run("rejects unmapped addresses", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.ReadCString(0x4000)
		require.Error(t, err)
		require.Equal(t, ErrInvalidMemoryAccess, errors.Cause(err))
	})

	t.Run("rejects projections that run off a region", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.NewRegion(0x1000, 0x10)
		require.NoError(t, err)

		_, err = vm.Project(0x1008, 0x10)
		require.Equal(t, ErrInvalidMemoryAccess, errors.Cause(err))

		err = vm.WriteCString(0x100e, "abc")
		require.Equal(t, ErrInvalidMemoryAccess, errors.Cause(err))
	})

	t.Run("a string without terminator stops at the region end", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.NewRegion(0x1000, 4)
		require.NoError(t, err)

		_, err = vm.WriteAt([]byte("abcd"), 0x1000)
		require.NoError(t, err)

		_, err = vm.ReadCString(0x1000)
		require.Equal(t, ErrInvalidMemoryAccess, errors.Cause(err))
	})

	t.Run("null is never mapped for strings", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.NewRegion(0, PageSize)
		require.NoError(t, err)

		_, err = vm.ReadCString(0)
		require.Equal(t, ErrNullPointer, err)
	})

	t.Run("returns the existing region for the same start", func(t *testing.T) {
		vm := NewVirtualMemory()

		a, err := vm.NewRegion(0x1000, 0x100)
		require.NoError(t, err)

		b, err := vm.NewRegion(0x1000, 0x80)
		require.NoError(t, err)
		require.True(t, a == b)

		_, err = vm.NewRegion(0x1000, 0x200)
		require.Equal(t, ErrBadRegionRequest, errors.Cause(err))

		_, err = vm.NewRegion(0x0f00, 0x200)
		require.Equal(t, ErrBadRegionRequest, errors.Cause(err))

		require.Equal(t, 0x100, vm.Size())
	})

	t.Run("finds regions after the lookup cache was filled", func(t *testing.T) {
		vm := NewVirtualMemory()

		_, err := vm.NewRegion(0x1000, 0x10)
		require.NoError(t, err)

		_, ok := vm.FindRegion(0x1004)
		require.True(t, ok)

		// Same page, different region.
		_, err = vm.NewRegion(0x1010, 0x10)
		require.NoError(t, err)

		reg, ok := vm.FindRegion(0x1014)
		require.True(t, ok)
		require.Equal(t, uintptr(0x1010), reg.Start)
	})
}

// Package-level so the addresses stay put for the duration of the test.
var (
	hostHello = []byte("hello\x00x")
	hostEmpty = []byte{0}
)

func TestHost(t *testing.T) {
	str, err := Host{}.ReadCString(uintptr(unsafe.Pointer(&hostHello[0])))
	require.NoError(t, err)
	require.Equal(t, "hello", string(str))

	str, err = Host{}.ReadCString(uintptr(unsafe.Pointer(&hostEmpty[0])))
	require.NoError(t, err)
	require.Empty(t, str)

	_, err = Host{}.ReadCString(0)
	require.Equal(t, ErrNullPointer, err)
}
