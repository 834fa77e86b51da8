package bus_test

import (
	"testing"

	"github.com/copperhead-emu/sm83/internal/bus"
)

func TestFlatMemoryByteRoundTrip(t *testing.T) {
	m := bus.NewFlatMemory()
	m.WriteByte(0x1234, 0xAB)
	if got := m.ReadByte(0x1234); got != 0xAB {
		t.Errorf("ReadByte = %#02x, want 0xAB", got)
	}
}

func TestReadWriteWordBigEndian(t *testing.T) {
	m := bus.NewFlatMemory()
	bus.WriteWord(m, 0x2000, 0xBEEF)
	if hi := m.ReadByte(0x2000); hi != 0xBE {
		t.Errorf("high byte at addr = %#02x, want 0xBE", hi)
	}
	if lo := m.ReadByte(0x2001); lo != 0xEF {
		t.Errorf("low byte at addr+1 = %#02x, want 0xEF", lo)
	}
	if got := bus.ReadWord(m, 0x2000); got != 0xBEEF {
		t.Errorf("ReadWord = %#04x, want 0xBEEF", got)
	}
}

func TestIORegisterAccess(t *testing.T) {
	m := bus.NewFlatMemory()
	m.WriteIO(bus.IF, 0x1F)
	if got := m.ReadIO(bus.IF); got != 0x1F {
		t.Errorf("ReadIO(IF) = %#02x, want 0x1F", got)
	}
	m.WriteIO(bus.IE, 0x03)
	if got := m.ReadIO(bus.IE); got != 0x03 {
		t.Errorf("ReadIO(IE) = %#02x, want 0x03", got)
	}
}

func TestLoadBytes(t *testing.T) {
	m := bus.NewFlatMemory()
	m.LoadBytes(0x0100, []uint8{0x00, 0xC3, 0x50, 0x01})
	want := []uint8{0x00, 0xC3, 0x50, 0x01}
	for i, w := range want {
		if got := m.ReadByte(0x0100 + uint16(i)); got != w {
			t.Errorf("byte %d = %#02x, want %#02x", i, got, w)
		}
	}
}
