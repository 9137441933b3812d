package embedding

// Pad fits a vector to target dimensions. Equal-length vectors come back
// unchanged, longer ones keep their first target values, and shorter ones
// are zero-padded on the right. The result always has length target.
func Pad(embedding []float32, target int) []float32 {
	if len(embedding) == target {
		return embedding
	}
	if len(embedding) > target {
		return embedding[:target]
	}

	padded := make([]float32, target)
	copy(padded, embedding)
	return padded
}

// Truncate caps text at maxChars characters, counting runes so a cut
// never splits a multi-byte character. Non-positive limits disable it.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
