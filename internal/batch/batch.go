// Package batch answers the questionnaire from a JSON document instead of a
// person.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/logging"
	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/session"
)

// ErrInvalidInput wraps every decode and schema failure.
var ErrInvalidInput = errors.New("invalid input")

// Request is the batch input document.
type Request struct {
	Answers    map[string]string `json:"answers"`
	SizePolicy engine.SizePolicy `json:"size_policy,omitempty"`
}

// Features mirrors engine.DerivedFeatures for output.
type Features struct {
	DataSize                string `json:"data_size"`
	FtoDRatio               string `json:"ftod_ratio"`
	Interpretability        bool   `json:"interpretability"`
	SpeedPriority           bool   `json:"speed_priority"`
	ReproducibilityPriority bool   `json:"reproducibility_priority"`
}

// Response is the batch output document.
type Response struct {
	SessionID string `json:"session_id"`
	MLNeeded  bool   `json:"ml_needed"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	Paradigm  string `json:"paradigm,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Rule      string `json:"rule,omitempty"`

	// Assumed lists questions answered Unknown on the decision path.
	Assumed []string `json:"assumed,omitempty"`
	// Defaulted lists asked questions that were missing or blank in the
	// request.
	Defaulted []string `json:"defaulted,omitempty"`
	// Ignored lists answered questions the decision path never reached.
	Ignored []string `json:"ignored,omitempty"`

	Features *Features         `json:"features,omitempty"`
	Answers  map[string]string `json:"answers"`

	// Summary is kept for text rendering.
	Summary session.Summary `json:"-"`
}

// Decode reads and validates a request.
func Decode(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("read input: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	schema, err := compiledSchema()
	if err != nil {
		return Request{}, fmt.Errorf("load schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return req, nil
}

// Run drives a session with the request's answers. Questions the request
// does not answer take their defaults. An answer that fails validation is
// returned as an error wrapping *questionnaire.ValidationError.
func Run(ctx context.Context, req Request, opts engine.Options) (Response, error) {
	if req.SizePolicy != "" {
		opts.SizePolicy = req.SizePolicy
	}
	s := session.New(ctx, opts)
	log := logging.Ctx(ctx)

	var defaulted []string
	for range len(q.All()) + 1 {
		question, ok := s.Next()
		if !ok {
			break
		}
		raw := req.Answers[question.ID]
		if strings.TrimSpace(raw) == "" {
			defaulted = append(defaulted, question.ID)
		}
		if err := s.Answer(question.ID, raw); err != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	sum, err := s.Summary()
	if err != nil {
		return Response{}, err
	}
	log.Debug().Str("session_id", sum.SessionID).Strs("defaulted", defaulted).Msg("batch run finished")

	resp := newResponse(sum, s.Answers())
	resp.Defaulted = defaulted
	for id := range req.Answers {
		if !s.Answers().Has(id) {
			resp.Ignored = append(resp.Ignored, id)
		}
	}
	slices.Sort(resp.Ignored)
	return resp, nil
}

func newResponse(sum session.Summary, answers q.AnswerSet) Response {
	rec := sum.Recommendation
	resp := Response{
		SessionID: sum.SessionID,
		MLNeeded:  sum.Gate.MLNeeded,
		Message:   sum.Gate.Message,
		Kind:      rec.Kind.String(),
		Paradigm:  string(rec.Paradigm),
		Algorithm: string(rec.Algorithm),
		Rule:      rec.Rule,
		Assumed:   rec.Assumed,
		Answers:   answers.Map(),
		Summary:   sum,
	}
	if f := sum.Features; f != nil {
		resp.Features = &Features{
			DataSize:                string(f.DataSize),
			FtoDRatio:               string(f.FtoDRatio),
			Interpretability:        f.Interpretability,
			SpeedPriority:           f.SpeedPriority,
			ReproducibilityPriority: f.ReproducibilityPriority,
		}
	}
	return resp
}

// WriteJSON encodes resp as indented JSON.
func WriteJSON(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
