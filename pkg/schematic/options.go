package schematic

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/aslanistan/schemtex/pkg/tex"
)

// Option key classes. Voltage, current, and label keys are forwarded to the
// renderer as annotation commands; misc keys configure layout and are
// consumed internally; everything else passes through verbatim.
var (
	voltageKeys = []string{"v", "v_", "v^", "v_>", "v_<", "v^>", "v^<"}
	currentKeys = []string{"i", "i_", "i^", "i_>", "i_<", "i^>", "i^<",
		"i>_", "i<_", "i>^", "i<^"}
	labelKeys = []string{"l", "l_", "l^"}
	miscKeys  = []string{"left", "right", "up", "down", "rotate", "size",
		"dir", "mirror", "scale"}
)

// Options holds a component's free-form option mapping. Bare flags map to an
// empty string value. Options are immutable after construction; draw-time
// key rewriting works on copies.
type Options map[string]string

// ParseOptions parses a comma-separated option string such as
// "up, size=2, l=R_x, mirror". The four cardinal direction words are folded
// into a single "dir" key: the orientation is one option, not four.
func ParseOptions(s string) Options {
	opts := make(Options)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, val, found := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if found {
			opts[key] = strings.TrimSpace(val)
			continue
		}
		switch key {
		case "left", "right", "up", "down":
			opts["dir"] = key
		default:
			opts[key] = ""
		}
	}
	return opts
}

// Has reports whether key is present.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Float returns the option value as a float, or def when absent or malformed.
func (o Options) Float(key string, def float64) float64 {
	v, ok := o[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Clone returns a shallow copy, used by the pure option-rewrite step so the
// stored options are never mutated during draw.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

// format serializes the keys listed in choices as comma-joined key=value
// text, label-escaping each value. Keys are emitted in sorted order for
// deterministic output. Bare flags serialize as the key alone.
func (o Options) format(choices []string) string {
	var parts []string
	for _, key := range slices.Sorted(maps.Keys(o)) {
		if !slices.Contains(choices, key) {
			continue
		}
		if val := o[key]; val == "" {
			parts = append(parts, key)
		} else {
			parts = append(parts, key+"="+tex.FormatLabel(val))
		}
	}
	return strings.Join(parts, ",")
}

// formatRest serializes every key not claimed by the voltage, current,
// label, or misc classes. These are pass-through renderer options.
func (o Options) formatRest() string {
	var parts []string
	for _, key := range slices.Sorted(maps.Keys(o)) {
		if slices.Contains(voltageKeys, key) ||
			slices.Contains(currentKeys, key) ||
			slices.Contains(labelKeys, key) ||
			slices.Contains(miscKeys, key) {
			continue
		}
		if val := o[key]; val == "" {
			parts = append(parts, key)
		} else {
			parts = append(parts, key+"="+tex.FormatLabel(val))
		}
	}
	return strings.Join(parts, ",")
}
