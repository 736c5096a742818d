package memory

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

const PageSize = 4096

type Region struct {
	Start, Size uintptr

	linear []byte
}

func (reg *Region) Contains(x uintptr) bool {
	if x < reg.Start {
		return false
	}

	if x >= reg.Start+reg.Size {
		return false
	}

	return true
}

func pageRound(sz uintptr) uintptr {
	if sz < PageSize {
		return PageSize
	}

	diff := sz % PageSize
	if diff == 0 {
		return sz
	}

	return sz + (PageSize - diff)
}

// Project returns the backing bytes for [addr, addr+sz), growing the lazily
// allocated backing store as needed.
func (reg *Region) Project(addr, sz uintptr) []byte {
	offset := addr - reg.Start

	if uintptr(len(reg.linear)) < offset+sz {
		slice := make([]byte, pageRound(offset+sz))
		copy(slice, reg.linear)

		reg.linear = slice
	}

	return reg.linear[offset : offset+sz]
}

// VirtualMemory is a sparse address space made of regions. It stands in for
// a task's memory when the kernel is driven with synthetic addresses.
type VirtualMemory struct {
	regions []*Region

	// page number -> *Region
	pages *lru.ARCCache

	size uintptr
}

func NewVirtualMemory() *VirtualMemory {
	pages, _ := lru.NewARC(256)

	return &VirtualMemory{
		pages: pages,
	}
}

func (vm *VirtualMemory) Size() int {
	return int(vm.size)
}

func (vm *VirtualMemory) FindRegion(addr uintptr) (*Region, bool) {
	page := addr / PageSize

	if v, ok := vm.pages.Get(page); ok {
		reg := v.(*Region)
		if reg.Contains(addr) {
			return reg, true
		}
	}

	for _, reg := range vm.regions {
		if reg.Contains(addr) {
			vm.pages.Add(page, reg)
			return reg, true
		}
	}

	return nil, false
}

var ErrInvalidMemoryAccess = errors.New("invalid memory access")

// Project returns a view of [addr, addr+sz). The range must lie in a single
// region.
func (vm *VirtualMemory) Project(addr, sz uintptr) ([]byte, error) {
	reg, ok := vm.FindRegion(addr)
	if !ok || (sz > 0 && !reg.Contains(addr+sz-1)) {
		return nil, errors.Wrapf(ErrInvalidMemoryAccess, "error projecting address=%x, size=%x", addr, sz)
	}

	return reg.Project(addr, sz), nil
}

var ErrBadRegionRequest = errors.New("bad region request")

// NewRegion maps size bytes at addr. Asking again for an already mapped
// start address returns the existing region if it is large enough.
func (vm *VirtualMemory) NewRegion(addr, size uintptr) (*Region, error) {
	if size == 0 || addr+size < addr {
		return nil, errors.Wrapf(ErrBadRegionRequest, "address=%x, size=%x", addr, size)
	}

	reg, ok := vm.FindRegion(addr)
	if ok {
		if reg.Start != addr || reg.Size < size {
			return nil, errors.Wrapf(ErrBadRegionRequest, "overlaps region at %x", reg.Start)
		}

		return reg, nil
	}

	for _, other := range vm.regions {
		if other.Start > addr && other.Start < addr+size {
			return nil, errors.Wrapf(ErrBadRegionRequest, "overlaps region at %x", other.Start)
		}
	}

	reg = &Region{
		Start: addr,
		Size:  size,
	}

	vm.regions = append(vm.regions, reg)
	vm.pages.Purge()

	vm.size += size

	return reg, nil
}

func (vm *VirtualMemory) ReadAt(b []byte, addr uintptr) (int, error) {
	mem, err := vm.Project(addr, uintptr(len(b)))
	if err != nil {
		return 0, err
	}

	return copy(b, mem), nil
}

func (vm *VirtualMemory) WriteAt(b []byte, addr uintptr) (int, error) {
	mem, err := vm.Project(addr, uintptr(len(b)))
	if err != nil {
		return 0, err
	}

	return copy(mem, b), nil
}

// WriteCString stores s followed by a NUL at addr.
func (vm *VirtualMemory) WriteCString(addr uintptr, s string) error {
	mem, err := vm.Project(addr, uintptr(len(s))+1)
	if err != nil {
		return err
	}

	copy(mem, s)
	mem[len(s)] = 0

	return nil
}

func (vm *VirtualMemory) ReadCString(addr uintptr) ([]byte, error) {
	var t [1]byte

	return readCString(addr, func(off uintptr) (byte, error) {
		_, err := vm.ReadAt(t[:], off)
		return t[0], err
	})
}
