package arch

import (
	"testing"
	"unsafe"
)

// The arm64 layout is an ABI shared with swtch_arm64.s: ra, sp, x19..x26,
// then the frame pointer. Any change here is a breaking regression.
func TestLayoutARM64(t *testing.T) {
	var c Context
	offsets := []struct {
		name string
		want uintptr
		got  uintptr
	}{
		{"ra", 0, unsafe.Offsetof(c.ra)},
		{"sp", 8, unsafe.Offsetof(c.sp)},
		{"x19", 16, unsafe.Offsetof(c.x19)},
		{"x20", 24, unsafe.Offsetof(c.x20)},
		{"x21", 32, unsafe.Offsetof(c.x21)},
		{"x22", 40, unsafe.Offsetof(c.x22)},
		{"x23", 48, unsafe.Offsetof(c.x23)},
		{"x24", 56, unsafe.Offsetof(c.x24)},
		{"x25", 64, unsafe.Offsetof(c.x25)},
		{"x26", 72, unsafe.Offsetof(c.x26)},
		{"fp", 80, unsafe.Offsetof(c.fp)},
	}
	for _, f := range offsets {
		if f.got != f.want {
			t.Errorf("offset of %s = %d, want %d", f.name, f.got, f.want)
		}
	}
	if offRA != 0 || offSP != 8 || offX19 != 16 {
		t.Error("exported offset constants drifted from the documented layout")
	}
}
