package adaptivebg

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// DefaultColor is the adaptive icon background, #A9B65F.
var DefaultColor = RGB{169, 182, 95}

// RGBA implements color.Color. Alpha is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor accepts "#A9B65F", "A9B65F" or a decimal triple such as
// "169,182,95" or "(169, 182, 95)".
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	return parseHex(s)
}

func parseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 6-char hex or r,g,b", s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid %s channel in %q: %w", channelNames[i], s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

func parseTriple(s string) (RGB, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 3 channels, got %d", s, len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid %s channel in %q: %w", channelNames[i], s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

var channelNames = [3]string{"red", "green", "blue"}
