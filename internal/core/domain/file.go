package domain

// ContentFile is a single indexable file discovered by a content scan.
type ContentFile struct {
	// RelPath is the path relative to the scanned content root, with
	// separators normalised to "/". Slugs and folders derive from it.
	RelPath string

	// AbsPath is the absolute filesystem path used for reading.
	AbsPath string
}
