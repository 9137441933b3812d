package driven

// DocumentParser splits a raw document into front-matter metadata and body.
type DocumentParser interface {
	// Parse returns the front-matter as a loosely-typed mapping and the
	// remaining body text. A document without front-matter yields an
	// empty mapping and the full input as body. Field extraction and
	// type checks are the caller's concern.
	Parse(raw []byte) (meta map[string]any, body string, err error)
}
