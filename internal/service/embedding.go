package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// EmbeddingService produces vectors for recipe similarity search
type EmbeddingService struct{}

func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{}
}

// GenerateEmbedding returns a simple deterministic embedding for the given
// text: total length, vowel count and consonant count.
func (s *EmbeddingService) GenerateEmbedding(text string) (pgvector.Vector, error) {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	length := float32(len(text))
	return pgvector.NewVector([]float32{length, vowels, consonants}), nil
}
