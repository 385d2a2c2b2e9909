package analyzer

var englishStopwords = []string{
	"a", "an", "the", "and", "or", "but",
	"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
	"is", "are", "was", "were", "be", "been", "being",
	"this", "that", "these", "those", "it", "its", "itself",
	"i", "me", "my", "we", "our", "you", "your",
	"he", "him", "his", "she", "her", "they", "them", "their",
	"do", "does", "did", "have", "has", "had",
	"not", "no", "nor", "only", "very", "too",
	"can", "could", "should", "would", "may", "might", "must", "will",
	"if", "then", "else", "than", "so", "because", "while", "when", "where",
	"about", "into", "over", "under", "up", "down", "out",
	"here", "there", "what", "which", "who", "how", "all", "any", "each",
}

var indonesianStopwords = []string{
	"yang", "dan", "di", "ke", "dari", "ini", "itu", "untuk", "dengan",
	"pada", "adalah", "sebagai", "dalam", "tidak", "akan", "juga", "atau",
	"oleh", "karena", "sudah", "telah", "bisa", "dapat", "ada", "saja",
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// DefaultStopwords returns a fresh English stopword set.
func DefaultStopwords() map[string]struct{} {
	return toSet(englishStopwords)
}

func IndonesianStopwords() map[string]struct{} {
	return toSet(indonesianStopwords)
}
