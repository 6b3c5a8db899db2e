package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cyclingText(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"

	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[i%len(alphabet)])
	}

	return sb.String()
}

func TestSplitWindowsAndOverlap(t *testing.T) {
	assert := assert.New(t)

	doc := Document{
		Source:  "test",
		Content: cyclingText(250),
	}

	splitter := NewSplitter(100, 20)
	chunks := splitter.Split(doc)

	// step 80 over 250 runes: windows at 0, 80, and 160; the window at
	// 160 reaches the end of the document, so splitting stops there.
	assert.Len(chunks, 3)

	for _, chunk := range chunks {
		assert.Equal("test", chunk.Source)
		assert.NotEmpty(chunk.ID)
		assert.LessOrEqual(len([]rune(chunk.Content)), 100)
	}

	first := []rune(chunks[0].Content)
	second := []rune(chunks[1].Content)
	assert.Equal(string(first[len(first)-20:]), string(second[:20]))

	// The last chunk covers the document tail.
	assert.True(strings.HasSuffix(doc.Content, chunks[len(chunks)-1].Content))
}

func TestSplitEmptyDocument(t *testing.T) {
	assert := assert.New(t)

	splitter := NewSplitter(100, 20)

	assert.Empty(splitter.Split(Document{Source: "empty"}))
	assert.Empty(splitter.Split(Document{Source: "blank", Content: "   \n\t  "}))
}

func TestSplitterClampsOverlap(t *testing.T) {
	assert := assert.New(t)

	// Overlap >= size would never advance the window.
	splitter := NewSplitter(10, 20)
	chunks := splitter.Split(Document{Source: "clamped", Content: cyclingText(30)})

	assert.NotEmpty(chunks)
}

func TestSplitAllBuiltin(t *testing.T) {
	assert := assert.New(t)

	splitter := NewSplitter(500, 50)
	chunks := splitter.SplitAll(Builtin())

	assert.NotEmpty(chunks)

	sources := make(map[string]int)
	for _, chunk := range chunks {
		assert.NotEmpty(chunk.Content)
		sources[chunk.Source]++
	}

	// Every article must contribute at least one retrieval unit.
	assert.Len(sources, 4)
}

func TestChunkIDsUnique(t *testing.T) {
	assert := assert.New(t)

	splitter := NewSplitter(500, 50)
	chunks := splitter.SplitAll(Builtin())

	seen := make(map[string]bool)
	for _, chunk := range chunks {
		assert.False(seen[chunk.ID], "duplicate chunk ID %s", chunk.ID)
		seen[chunk.ID] = true
	}
}
