package wordlist

import "sync"

// EnglishStopWords contains common English words that are usually not useful
// for searching.
var EnglishStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "is", "it",
	"no", "not", "of", "on", "or", "such",
	"that", "the", "their", "then", "there", "these",
	"they", "this", "to", "was", "will", "with",
}

// English returns the shared set built from EnglishStopWords.
var English = sync.OnceValue(func() *Set {
	return MustNew(EnglishStopWords)
})
