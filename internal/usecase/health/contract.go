package health

import "context"

// LexiconChecker reports the number of loaded stopwords.
type LexiconChecker interface {
	Len() int
}

// CachePinger checks result cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
