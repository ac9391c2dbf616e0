package pixfmt

import (
	"fmt"
	"strings"
)

var layoutByName = buildLayoutByName()

func buildLayoutByName() map[string]Layout {
	m := make(map[string]Layout, numLayouts)
	for i := Layout(0); i < numLayouts; i++ {
		m[layoutTable[i].name] = i
	}
	return m
}

var signByName = map[string]Sign{
	"UNORM": SignUnorm, "SNORM": SignSnorm, "BNORM": SignBnorm, "GNORM": SignGnorm,
	"UINT": SignUint, "SINT": SignSint, "BINT": SignBint, "GINT": SignGint, "FLOAT": SignFloat,
}

var swizzleByRune = map[byte]Swizzle{
	'0': SwizzleConst0, '1': SwizzleConst1,
	'X': SwizzleX, 'Y': SwizzleY, 'Z': SwizzleZ, 'W': SwizzleW,
}

// Parse reconstructs a PixelFormat from its String() form, the inverse of
// PixelFormat.String.
func Parse(s string) (PixelFormat, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return 0, fmt.Errorf("pixfmt.Parse: malformed format string %q", s)
	}
	layout, ok := layoutByName[parts[0]]
	if !ok {
		return 0, fmt.Errorf("pixfmt.Parse: unknown layout %q", parts[0])
	}

	sign := func(field, prefix string) (Sign, error) {
		if !strings.HasPrefix(field, prefix+"(") || !strings.HasSuffix(field, ")") {
			return 0, fmt.Errorf("pixfmt.Parse: malformed %s field %q", prefix, field)
		}
		name := field[len(prefix)+1 : len(field)-1]
		s, ok := signByName[name]
		if !ok {
			return 0, fmt.Errorf("pixfmt.Parse: unknown sign %q", name)
		}
		return s, nil
	}

	sign0, err := sign(parts[1], "sign0")
	if err != nil {
		return 0, err
	}
	sign12, err := sign(parts[2], "sign12")
	if err != nil {
		return 0, err
	}
	sign3, err := sign(parts[3], "sign3")
	if err != nil {
		return 0, err
	}

	if len(parts[4]) != 4 {
		return 0, fmt.Errorf("pixfmt.Parse: malformed swizzle field %q", parts[4])
	}
	var sw [4]Swizzle
	for i := 0; i < 4; i++ {
		v, ok := swizzleByRune[parts[4][i]]
		if !ok {
			return 0, fmt.Errorf("pixfmt.Parse: unknown swizzle char %q", parts[4][i])
		}
		sw[i] = v
	}

	return Make(layout, sign0, sign12, sign3, sw[0], sw[1], sw[2], sw[3]), nil
}
