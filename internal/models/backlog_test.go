package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBacklogInput() CreateBacklogInput {
	return CreateBacklogInput{
		Title:             "Stray",
		Platform:          "PC",
		Genre:             "Adventure",
		Category:          CategoryNextToPlay,
		Priority:          PriorityHigh,
		Developer:         "BlueTwelve Studio",
		ReleaseDate:       "2022-07-19",
		Cover:             "https://example.com/stray.jpg",
		EstimatedPlaytime: 7,
		CurrentPrice:      29.99,
		WishlistPrice:     19.99,
	}
}

func TestCreateBacklogInputValidate(t *testing.T) {
	assert.NoError(t, validBacklogInput().Validate())

	in := validBacklogInput()
	in.Category = ""

	err := in.Validate()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "category", vErr.Field)
}

func TestUpdateBacklogInputFields(t *testing.T) {
	assert.Empty(t, UpdateBacklogInput{}.Fields())

	price := 9.99
	playtime := 40
	in := UpdateBacklogInput{CurrentPrice: &price, EstimatedPlaytime: &playtime}

	fields := in.Fields()
	assert.Equal(t, map[string]any{"current_price": 9.99, "estimated_playtime": 40}, fields)
}

func TestDefaultMoveToLibraryRequest(t *testing.T) {
	req := DefaultMoveToLibraryRequest()

	assert.Equal(t, StatusNotStarted, req.Status)
	assert.Zero(t, req.Rating)
	assert.Zero(t, req.Playtime)
	assert.Zero(t, req.Progress)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.CompletionDate)
	assert.Nil(t, req.Notes)
}
