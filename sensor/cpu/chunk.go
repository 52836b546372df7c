package cpu

import (
	"bufio"
	"strings"
)

// Chunk holds the trimmed key/value pairs of a single block of output.
type Chunk map[string]string

// Chunker breaks command output into blocks. A new Chunk is started for every
// line whose key satisfies IsStart. Lines without the Delimiter and lines
// before the first start line are ignored.
type Chunker struct {
	Delimiter string
	IsStart   func(key string) bool
}

func (c Chunker) Split(output string) []Chunk {
	var chunks []Chunk
	var current Chunk
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		key, value, ok := splitLine(sc.Text(), c.Delimiter)
		if !ok {
			continue
		}
		if c.IsStart(key) {
			current = Chunk{}
			chunks = append(chunks, current)
		}
		if current == nil {
			continue
		}
		current[key] = value
	}
	return chunks
}

// Header returns the first key of the chunk that has the given prefix.
func (c Chunk) Header(prefix string) (string, bool) {
	for key := range c {
		if strings.HasPrefix(key, prefix) {
			return key, true
		}
	}
	return "", false
}

func splitLine(line, delimiter string) (string, string, bool) {
	key, value, ok := strings.Cut(line, delimiter)
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
