package audio

// Resample converts samples from one rate to another by linear interpolation.
// The output has len(samples)*to/from samples; the source span is mapped
// end to end so the first and last samples are preserved.
func Resample(samples []int16, from, to int) []int16 {
	if from <= 0 || to <= 0 || len(samples) == 0 {
		return nil
	}
	if from == to {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out
	}

	n := len(samples) * to / from
	if n <= 0 {
		return nil
	}
	out := make([]int16, n)
	if n == 1 {
		out[0] = samples[0]
		return out
	}

	last := len(samples) - 1
	step := float64(len(samples)) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= last {
			out[i] = samples[last]
			continue
		}
		frac := pos - float64(idx)
		a := float64(samples[idx])
		b := float64(samples[idx+1])
		out[i] = int16(a + (b-a)*frac)
	}
	return out
}

// PCM16LE encodes samples as little-endian bytes.
func PCM16LE(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[2*i] = byte(uint16(s))
		out[2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}

// DecodePCM16LE decodes little-endian bytes into samples. A trailing odd
// byte is ignored.
func DecodePCM16LE(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
	}
	return out
}
