package paint

import "testing"

func TestParse_NamedColors(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", RGB(255, 0, 0)},
		{"blue", RGB(0, 0, 255)},
		{"white", RGB(255, 255, 255)},
		{"cornflowerblue", RGB(0x64, 0x95, 0xed)},
		{"  Lime  ", RGB(0, 255, 0)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got.Hex(), tt.want.Hex())
		}
	}
}

func TestParse_Hex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", RGB(255, 0, 0)},
		{"#1a2b3c", RGBA(0x1a, 0x2b, 0x3c, 0xff)},
		{"#801a2b3c", RGBA(0x1a, 0x2b, 0x3c, 0x80)},
		{"#FFF", RGB(255, 255, 255)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"notacolor", "#12", "#xyzxyz", ""} {
		if _, err := Parse(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(255, 0, 0), RGBA(1, 2, 3, 4), RGB(0, 0, 0)} {
		parsed, err := Parse(c.Hex())
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.Hex(), err)
		}
		if parsed != c {
			t.Errorf("round trip %v != %v", parsed.Hex(), c.Hex())
		}
	}
}

func TestLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 255, 255)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("expected start color at t=0, got %v", got.Hex())
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("expected end color at t=1, got %v", got.Hex())
	}

	mid := Lerp(a, b, 0.5)
	if mid.Red() < 126 || mid.Red() > 129 {
		t.Errorf("expected midpoint grey, got %v", mid.Hex())
	}
}

func TestChannels(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if c.Red() != 0x11 || c.Green() != 0x22 || c.Blue() != 0x33 || c.Alpha() != 0x44 {
		t.Errorf("channel mismatch for %08x", uint32(c))
	}
}
