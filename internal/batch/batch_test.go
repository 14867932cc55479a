package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/algoselect/internal/engine"
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

func TestDecode(t *testing.T) {
	req, err := Decode(strings.NewReader(`{"answers":{"data_availability":"Y","data_label":"n"},"size_policy":"unknown"}`))
	require.NoError(t, err)
	assert.Equal(t, "Y", req.Answers[q.IDDataAvailability])
	assert.Equal(t, "n", req.Answers[q.IDDataLabel])
	assert.Equal(t, engine.SizePolicyUnknown, req.SizePolicy)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"answers":`},
		{"missing answers", `{}`},
		{"unknown question id", `{"answers":{"data_colour":"1"}}`},
		{"non-string answer", `{"answers":{"data_features":12}}`},
		{"unknown top-level field", `{"answers":{},"extra":true}`},
		{"bad size policy", `{"answers":{},"size_policy":"medium"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestSchemaCoversCatalog(t *testing.T) {
	props := schemaDefinition()["properties"].(map[string]any)["answers"].(map[string]any)["properties"].(map[string]any)
	assert.Len(t, props, len(q.All()))
	for _, question := range q.All() {
		assert.Contains(t, props, question.ID)
	}
}

func TestRun_Supervised(t *testing.T) {
	req := Request{Answers: map[string]string{
		q.IDDataAvailability:       "Y",
		q.IDDataLabel:              "Y",
		q.IDDataProgrammability:    "N",
		q.IDDataKnowledge:          "Y",
		q.IDMetricInterpretability: "4",
		q.IDDataTypeOutput:         q.OutputBinary,
		q.IDRIModelPreference:      "Y",
	}}
	resp, err := Run(context.Background(), req, engine.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, resp.MLNeeded)
	assert.Equal(t, engine.MessageMLNeeded, resp.Message)
	assert.Equal(t, string(engine.Supervised), resp.Paradigm)
	assert.Equal(t, engine.KindAlgorithm.String(), resp.Kind)
	assert.NotEmpty(t, resp.Algorithm)
	require.NotNil(t, resp.Features)
	assert.True(t, resp.Features.Interpretability)

	assert.Contains(t, resp.Defaulted, q.IDDataGoal)
	assert.NotContains(t, resp.Defaulted, q.IDDataAvailability)
	assert.Equal(t, []string{q.IDRIModelPreference}, resp.Ignored)
	assert.Equal(t, "4", resp.Answers[q.IDMetricInterpretability])
	assert.Len(t, resp.SessionID, 36)
}

func TestRun_NoMLNeeded(t *testing.T) {
	req := Request{Answers: map[string]string{
		q.IDDataAvailability: "N",
		q.IDDataCreativity:   "N",
	}}
	resp, err := Run(context.Background(), req, engine.DefaultOptions())
	require.NoError(t, err)

	assert.False(t, resp.MLNeeded)
	assert.Equal(t, engine.MessageNoMLNeeded, resp.Message)
	assert.Equal(t, engine.KindNoMLNeeded.String(), resp.Kind)
	assert.Empty(t, resp.Paradigm)
	assert.Nil(t, resp.Features)
	assert.Empty(t, resp.Defaulted)
}

func TestRun_BlankAnswerIsDefaulted(t *testing.T) {
	req := Request{Answers: map[string]string{
		q.IDDataAvailability: "  ",
		q.IDDataLabel:        "",
		q.IDDataKnowledge:    "N",
	}}
	resp, err := Run(context.Background(), req, engine.DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, resp.Defaulted, q.IDDataAvailability)
	assert.Contains(t, resp.Defaulted, q.IDDataLabel)
	assert.NotContains(t, resp.Defaulted, q.IDDataKnowledge)
	assert.Equal(t, "Y", resp.Answers[q.IDDataAvailability])
	assert.Equal(t, "Y", resp.Answers[q.IDDataLabel])
}

func TestRun_AssumedIsReported(t *testing.T) {
	req := Request{Answers: map[string]string{
		q.IDDataAvailability: "U",
		q.IDDataCreativity:   "Y",
	}}
	resp, err := Run(context.Background(), req, engine.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, string(engine.Reinforcement), resp.Paradigm)
	assert.Contains(t, resp.Assumed, q.IDDataAvailability)
}

func TestRun_InvalidAnswer(t *testing.T) {
	req := Request{Answers: map[string]string{
		q.IDDataAvailability: "maybe",
	}}
	_, err := Run(context.Background(), req, engine.DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *q.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, q.IDDataAvailability, verr.QuestionID)
}

func TestRun_SizePolicyFromRequest(t *testing.T) {
	answers := map[string]string{
		q.IDDataAvailability:    "Y",
		q.IDDataLabel:           "Y",
		q.IDDataProgrammability: "N",
		q.IDDataKnowledge:       "Y",
	}
	resp, err := Run(context.Background(), Request{Answers: answers}, engine.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, string(engine.SizeHigh), resp.Features.DataSize)

	resp, err = Run(context.Background(), Request{Answers: answers, SizePolicy: engine.SizePolicyUnknown}, engine.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, string(engine.SizeUnknown), resp.Features.DataSize)
}

func TestWriteJSON(t *testing.T) {
	resp, err := Run(context.Background(), Request{Answers: map[string]string{
		q.IDDataAvailability: "N",
		q.IDDataCreativity:   "N",
	}}, engine.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, resp))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, false, out["ml_needed"])
	assert.Equal(t, "no-ml-needed", out["kind"])
	assert.NotContains(t, out, "Summary")
	assert.NotContains(t, out, "features")
}
