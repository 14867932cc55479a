package engine

import (
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// ReinforcementTable is the reinforcement decision table. It covers every
// input, so its NeedsDiscussion fallback is unreachable.
var ReinforcementTable = Table{
	Paradigm: Reinforcement,
	Rules: []Rule{
		{
			Name:      "output=continuous, model preferred, model available",
			Algorithm: AlphaZero,
			match: func(in Input) bool {
				return continuousOutput(in) && in.yes(q.IDRIModelPreference) && in.yes(q.IDRIModelAvailability)
			},
		},
		{
			Name:      "output=continuous, model to be learned",
			Algorithm: ModelBased,
			match:     continuousOutput,
		},
		{
			Name:      "output=discrete, model preferred",
			Algorithm: ModelBased,
			match: func(in Input) bool {
				return in.yes(q.IDRIModelPreference)
			},
		},
		{
			Name:      "output=discrete, model free, policy",
			Algorithm: PolicyGradient,
			match: func(in Input) bool {
				return !in.yes(q.IDRIModelFreeValue)
			},
		},
		{
			Name:      "output=discrete, model free, state value",
			Algorithm: StateValue,
			match: func(in Input) bool {
				return in.yes(q.IDRIModelFreeValueState)
			},
		},
		{
			Name:      "output=discrete, model free, action value",
			Algorithm: ActionValue,
			match: func(Input) bool {
				return true
			},
		},
	},
}

// SelectReinforcement runs the reinforcement decision table.
func SelectReinforcement(f DerivedFeatures, answers q.AnswerSet) Recommendation {
	return ReinforcementTable.Select(Input{Features: f, Answers: answers})
}

func continuousOutput(in Input) bool {
	return in.is(q.IDDataTypeOutput, q.OutputContinuous)
}
