package ai

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error
	calls    int
}

func (c *stubClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func TestInterpretParsesModelResponse(t *testing.T) {
	client := &stubClient{
		response: `{"equipmentType": "Tractor", "rentalIntent": true, "keywords": ["ploughing", "kiraaye"]}`,
	}
	interp := NewDefaultQueryInterpreter(client, nil)

	result, err := interp.Interpret(context.Background(), "tractor chahiye kal ke liye")
	require.NoError(t, err)

	assert.Equal(t, "Tractor", result.EquipmentType)
	assert.True(t, result.RentalIntent)
	assert.Equal(t, []string{"ploughing", "kiraaye"}, result.Keywords)
}

func TestInterpretStripsMarkdownFences(t *testing.T) {
	client := &stubClient{
		response: "```json\n{\"equipmentType\": \"Rotavator\", \"rentalIntent\": false, \"keywords\": []}\n```",
	}
	interp := NewDefaultQueryInterpreter(client, nil)

	result, err := interp.Interpret(context.Background(), "rotavator kya hai")
	require.NoError(t, err)
	assert.Equal(t, "Rotavator", result.EquipmentType)
	assert.False(t, result.RentalIntent)
}

func TestInterpretDefaultsEquipmentType(t *testing.T) {
	client := &stubClient{
		response: `{"equipmentType": "", "rentalIntent": true, "keywords": ["khet"]}`,
	}
	interp := NewDefaultQueryInterpreter(client, nil)

	result, err := interp.Interpret(context.Background(), "khet ke liye kuch chahiye")
	require.NoError(t, err)
	assert.Equal(t, FallbackEquipmentType, result.EquipmentType)
}

func TestInterpretPropagatesModelFailure(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("model unavailable")}
	interp := NewDefaultQueryInterpreter(client, nil)

	_, err := interp.Interpret(context.Background(), "tractor chahiye")
	assert.Error(t, err)
}

func TestInterpretRejectsGarbageOutput(t *testing.T) {
	client := &stubClient{response: "Sure! Here is what I found about tractors..."}
	interp := NewDefaultQueryInterpreter(client, nil)

	_, err := interp.Interpret(context.Background(), "tractor chahiye")
	assert.Error(t, err)
}

func TestInterpretRejectsEmptyQuery(t *testing.T) {
	client := &stubClient{}
	interp := NewDefaultQueryInterpreter(client, nil)

	_, err := interp.Interpret(context.Background(), "   ")
	assert.Error(t, err)
	assert.Zero(t, client.calls, "the model must not be called for empty queries")
}
