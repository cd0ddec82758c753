package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStructure_PageCount(t *testing.T) {
	tests := []struct {
		name      string
		structure *DocumentStructure
		want      int
	}{
		{"nil structure", nil, 1},
		{"no counts", &DocumentStructure{Format: "text"}, 1},
		{"original wins", &DocumentStructure{OriginalPageCount: 3, EstimatedPageCount: 2}, 3},
		{"estimated fallback", &DocumentStructure{EstimatedPageCount: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.structure.PageCount())
		})
	}
}
