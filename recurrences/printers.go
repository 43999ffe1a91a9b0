package recurrences

import (
	"fmt"
	"strings"
)

// debug utilities

func sequencePrefixStringer[T any](s *Sequence[T], count int, sep string) string {
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, _ := s.Value(i)
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, sep)
}
