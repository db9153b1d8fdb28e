package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListCodec(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		stored string
	}{
		{name: "empty set stores as empty string", values: nil, stored: ""},
		{name: "single value", values: []string{"Fantasy"}, stored: "Fantasy"},
		{name: "multiple values keep order", values: []string{"Fantasy", "Sci-Fi", "Mystery"}, stored: "Fantasy,Sci-Fi,Mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stored, joinList(tt.values))
			assert.Equal(t, tt.values, splitList(tt.stored))
		})
	}
}

func TestSplitList_DropsEmptySegments(t *testing.T) {
	assert.Equal(t, []string{"Fantasy", "Sci-Fi"}, splitList("Fantasy,,Sci-Fi,"))
	assert.Nil(t, splitList(""))
	assert.Empty(t, splitList(",,"))
}

func TestIDCodec(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	stored := joinIDs([]uuid.UUID{first, second})
	assert.Equal(t, first.String()+","+second.String(), stored)
	assert.Equal(t, []uuid.UUID{first, second}, splitIDs(stored))

	assert.Equal(t, "", joinIDs(nil))
	assert.Empty(t, splitIDs(""))
}

func TestSplitIDs_SkipsUnparsableSegments(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, []uuid.UUID{id}, splitIDs("not-a-uuid,"+id.String()))
}
