package arch

import (
	"testing"
	"unsafe"
)

// The amd64 layout is an ABI shared with swtch_amd64.s. Any change here is a
// breaking regression.
func TestLayoutAMD64(t *testing.T) {
	var c Context
	offsets := []struct {
		name string
		want uintptr
		got  uintptr
	}{
		{"ra", 0, unsafe.Offsetof(c.ra)},
		{"sp", 8, unsafe.Offsetof(c.sp)},
		{"rbx", 16, unsafe.Offsetof(c.rbx)},
		{"rbp", 24, unsafe.Offsetof(c.rbp)},
		{"r12", 32, unsafe.Offsetof(c.r12)},
		{"r13", 40, unsafe.Offsetof(c.r13)},
		{"r15", 48, unsafe.Offsetof(c.r15)},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Errorf("offset of %s = %d, want %d", f.name, f.got, f.want)
		}
	}
	if offRA != 0 || offSP != 8 || offRBX != 16 {
		t.Error("exported offset constants drifted from the documented layout")
	}
}
