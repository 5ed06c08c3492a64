package intelligence

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectTextConcatenatesTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{
				genai.Text("[{\"title\":"),
				genai.Text("\"Lisbon\"}]"),
			}},
		}},
	}

	text, err := collectText(resp)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Lisbon"}]`, text)
}

func TestCollectTextRejectsEmptyResponse(t *testing.T) {
	_, err := collectText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = collectText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	})
	assert.Error(t, err)
}
