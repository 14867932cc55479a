package engine

import (
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// SupervisedTable is the supervised decision table.
var SupervisedTable = Table{
	Paradigm: Supervised,
	Rules: []Rule{
		{
			Name:      "size=high, interpretability, speed",
			Algorithm: DecisionTree,
			match: func(in Input) bool {
				return in.high() && in.Features.Interpretability && in.Features.SpeedPriority
			},
		},
		{
			Name:      "size=high, interpretability, no speed",
			Algorithm: RandomForest,
			match: func(in Input) bool {
				return in.high() && in.Features.Interpretability
			},
		},
		{
			Name:      "size=high, column=text",
			Algorithm: RNN,
			match: func(in Input) bool {
				return in.high() && in.is(q.IDDataColumn, q.ColumnText)
			},
		},
		{
			Name:      "size=high, column=signal, signal=image",
			Algorithm: CNN,
			match: func(in Input) bool {
				return in.high() && in.is(q.IDDataColumn, q.ColumnSignal) &&
					in.is(q.IDDataSignalType, q.SignalImage)
			},
		},
		{
			Name:      "size=high, column=signal, signal=audio|timeseries, output_prob",
			Algorithm: NaiveBayes,
			match: func(in Input) bool {
				return in.high() && sequentialSignal(in) && in.yes(q.IDDataOutputProb)
			},
		},
		{
			Name:      "size=high, column=signal, signal=audio|timeseries, no output_prob",
			Algorithm: ANN,
			match: func(in Input) bool {
				return in.high() && sequentialSignal(in)
			},
		},
		{
			Name:      "size=high, no interpretability",
			Algorithm: ANN,
			match: func(in Input) bool {
				return in.high()
			},
		},
		{
			Name:      "size!=high, ftod=low",
			Algorithm: SVMGaussian,
			match: func(in Input) bool {
				return in.Features.FtoDRatio == RatioLow
			},
		},
		{
			Name:      "size!=high, ftod=high, output=continuous, linear",
			Algorithm: LinearRegression,
			match: func(in Input) bool {
				return in.is(q.IDDataTypeOutput, q.OutputContinuous) && in.yes(q.IDDataIORelation)
			},
		},
		{
			Name:      "size!=high, ftod=high, output=continuous, nonlinear",
			Algorithm: PolynomialRegression,
			match: func(in Input) bool {
				return in.is(q.IDDataTypeOutput, q.OutputContinuous)
			},
		},
		{
			Name:      "size!=high, ftod=high, output=binary, output_prob, cond_indep",
			Algorithm: NaiveBayes,
			match: func(in Input) bool {
				return binaryProb(in) && in.yes(q.IDDataCondIndep)
			},
		},
		{
			Name:      "size!=high, ftod=high, output=binary, output_prob, no high correlation",
			Algorithm: LassoRidge,
			match: func(in Input) bool {
				return binaryProb(in) && in.yes(q.IDDataCorrelation)
			},
		},
		{
			Name:      "size!=high, ftod=high, output=binary, output_prob, high correlation",
			Algorithm: LogisticRegression,
			match:     binaryProb,
		},
		{
			Name:      "size!=high, ftod=high, output=binary, no output_prob",
			Algorithm: PolynomialRegression,
			match: func(in Input) bool {
				return in.is(q.IDDataTypeOutput, q.OutputBinary)
			},
		},
		{
			Name:      "size!=high, ftod=high, output=multiclass",
			Algorithm: KNN,
			match: func(in Input) bool {
				return !in.is(q.IDDataTypeOutput, q.OutputContinuous) && !in.is(q.IDDataTypeOutput, q.OutputBinary)
			},
		},
	},
}

// SelectSupervised runs the supervised decision table.
func SelectSupervised(f DerivedFeatures, answers q.AnswerSet) Recommendation {
	return SupervisedTable.Select(Input{Features: f, Answers: answers})
}

func sequentialSignal(in Input) bool {
	return in.is(q.IDDataColumn, q.ColumnSignal) &&
		(in.is(q.IDDataSignalType, q.SignalAudio) || in.is(q.IDDataSignalType, q.SignalTimeseries))
}

func binaryProb(in Input) bool {
	return in.is(q.IDDataTypeOutput, q.OutputBinary) && in.yes(q.IDDataOutputProb)
}
