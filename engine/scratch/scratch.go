package scratch

import "strconv"

// Package-level reusable buffer for per-frame string formatting
// (single-threaded usage). core.Run calls Init once and Reset every frame;
// UI code formats labels through Sprintf without touching fmt's allocator.
var buf []byte

// Init sets up the global scratch buffer. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1024
	}
	buf = make([]byte, 0, capacity)
}

// Reset clears the buffer length without freeing memory. Called once per frame.
func Reset() { buf = buf[:0] }

// Cap returns the current capacity. Useful for tuning.
func Cap() int { return cap(buf) }

// Len returns the current length.
func Len() int { return len(buf) }

// Sprintf is a minimal formatter over the frame buffer. Supported verbs:
// %s %d %u %f (with .prec) %%. Unknown verbs are written literally.
func Sprintf(format string, args ...any) string {
	var ai int
	mark := len(buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			buf = append(buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			buf = append(buf, '%')
			i++
			continue
		}
		// parse verb (+ optional .precision for %f)
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = parseUint(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			buf = append(buf, toString(args[ai])...)
		case 'd':
			buf = strconv.AppendInt(buf, toInt64(args[ai]), 10)
		case 'u':
			buf = strconv.AppendUint(buf, toUint64(args[ai]), 10)
		case 'f':
			p := 3
			if prec >= 0 {
				p = prec
			}
			buf = strconv.AppendFloat(buf, toFloat64(args[ai]), 'f', p, 64)
		default:
			buf = append(buf, '%', format[i])
		}
		ai++
	}
	return string(buf[mark:])
}

// ----- tiny helpers (no alloc) -----

func parseUint(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return "<unsupported>"
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toUint64(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint64:
		return x
	case int:
		return uint64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
