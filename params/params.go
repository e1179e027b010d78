// Package params provides typed access to the loosely typed parameter maps
// that travel with pipeline requests and model manifest entries.
package params

// Well-known parameter keys.
const (
	// SampleRate overrides the waveform sample rate, in Hz.
	SampleRate = "sample_rate"

	// MinProbability is the threshold postprocessors conventionally use to
	// drop low-confidence predictions.
	MinProbability = "min_probability"
)

// Get returns the value stored under key converted to T, or fallback when
// the key is absent or holds an incompatible type. YAML and JSON decoders
// produce int or float64 for numbers depending on the input, so numeric
// targets accept either representation.
func Get[T any](m map[string]any, key string, fallback T) T {
	val, ok := m[key]
	if !ok {
		return fallback
	}

	if v, ok := val.(T); ok {
		return v
	}

	switch any(fallback).(type) {
	case int:
		if f, ok := val.(float64); ok {
			return any(int(f)).(T)
		}
	case float64:
		if i, ok := val.(int); ok {
			return any(float64(i)).(T)
		}
	}

	return fallback
}
