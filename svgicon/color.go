package svgicon

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errParamMismatch = errors.New("param mismatch")

// parseHex reads a 3, 4, 6 or 8 digits hex color (with the leading #),
// returning the canonical 6 digits form and the alpha channel.
func parseHex(v string) (hex string, alpha float64, err error) {
	digits := strings.ToLower(strings.TrimPrefix(v, "#"))
	switch len(digits) {
	case 3, 4: // SVG specs say duplicate characters in case of short hex numbers
		expanded := make([]byte, 0, 2*len(digits))
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6, 8:
	default:
		return "", 0, errParamMismatch
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return "", 0, err
	}
	alpha = 1
	if len(digits) == 8 {
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = float64(a) / 0xff
	}
	return "#" + digits[:6], alpha, nil
}

// parseColorValue reads one rgb() channel, as an integer or a percentage.
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errParamMismatch
	}
	if v[len(v)-1] == '%' {
		n, err := strconv.ParseFloat(strings.TrimSpace(v[:len(v)-1]), 64)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(clamp01(n/100) * 0xff)), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n > 255 {
		n = 255
	} else if n < 0 {
		n = 0
	}
	return uint8(n), nil
}

// parseSVGColor parses a literal color in all the supported forms:
// hex, rgb(), rgba() and the SVG 1.1 names, obtained from the colornames package.
// The returned hex string is lower case with 6 digits.
func parseSVGColor(colorStr string) (hex string, alpha float64, err error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	if v == "" {
		return "", 0, errParamMismatch
	}
	if v[0] == '#' {
		return parseHex(v)
	}
	if cn, ok := colornames.Map[v]; ok {
		return fmt.Sprintf("#%02x%02x%02x", cn.R, cn.G, cn.B), float64(cn.A) / 0xff, nil
	}

	alpha = 1
	var args string
	switch {
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		args = v[len("rgba(") : len(v)-1]
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		args = v[len("rgb(") : len(v)-1]
	default:
		return "", 0, errParamMismatch
	}
	vals := strings.Split(args, ",")
	if len(vals) != 3 && !(len(vals) == 4 && strings.HasPrefix(v, "rgba")) {
		return "", 0, errParamMismatch
	}
	var cvals [3]uint8
	for i := range cvals {
		cvals[i], err = parseColorValue(vals[i])
		if err != nil {
			return "", 0, err
		}
	}
	if len(vals) == 4 {
		alpha, err = strconv.ParseFloat(strings.TrimSpace(vals[3]), 64)
		if err != nil {
			return "", 0, err
		}
		alpha = clamp01(alpha)
	}
	return fmt.Sprintf("#%02x%02x%02x", cvals[0], cvals[1], cvals[2]), alpha, nil
}

func clamp01(f float64) float64 { return math.Max(0, math.Min(1, f)) }

// withAlpha appends the opacity as a 2 digits hex suffix, when it is below 1.
func withAlpha(hex string, opacity float64) string {
	if opacity >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, int(math.Round(clamp01(opacity)*0xff)))
}
