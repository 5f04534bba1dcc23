package entry

//go:generate mockgen -source=format.go -destination=mockformat.gen.go -package=entry

// A Format understands one on-disk definition syntax and converts
// between source text and the document model.
type Format interface {
	// Name identifies the format in logs and reports.
	Name() string
	// Extract parses source text into a document. Unrecognized text is
	// preserved as inert segments; problems become warnings.
	Extract(text string) Document
	// SortKey derives the value an entry is ordered by when sorting.
	SortKey(e Entry) string
	// FoldKey normalizes a key for equality comparison.
	FoldKey(key string) string
}
