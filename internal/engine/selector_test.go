package engine

import (
	"testing"

	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func highSize(mods ...func(*DerivedFeatures)) DerivedFeatures {
	f := DerivedFeatures{DataSize: SizeHigh, FtoDRatio: RatioLow}
	for _, m := range mods {
		m(&f)
	}
	return f
}

func lowSize(ratio Ratio) DerivedFeatures {
	return DerivedFeatures{DataSize: SizeLow, FtoDRatio: ratio}
}

func interpretable(f *DerivedFeatures) { f.Interpretability = true }
func fast(f *DerivedFeatures)          { f.SpeedPriority = true }
func reproducible(f *DerivedFeatures)  { f.ReproducibilityPriority = true }

func TestSelectSupervised(t *testing.T) {
	tests := []struct {
		name     string
		features DerivedFeatures
		answers  q.AnswerSet
		want     Algorithm
	}{
		{"decision tree", highSize(interpretable, fast), answers(), DecisionTree},
		{"random forest", highSize(interpretable), answers(), RandomForest},
		{"rnn", highSize(), answers(q.IDDataColumn, q.ColumnText), RNN},
		{"cnn", highSize(), answers(q.IDDataColumn, q.ColumnSignal, q.IDDataSignalType, q.SignalImage), CNN},
		{
			"naive bayes on audio", highSize(),
			answers(q.IDDataColumn, q.ColumnSignal, q.IDDataSignalType, q.SignalAudio, q.IDDataOutputProb, "Y"),
			NaiveBayes,
		},
		{
			"ann on timeseries", highSize(),
			answers(q.IDDataColumn, q.ColumnSignal, q.IDDataSignalType, q.SignalTimeseries, q.IDDataOutputProb, "N"),
			ANN,
		},
		{"ann on features", highSize(), answers(q.IDDataColumn, q.ColumnFeatures), ANN},
		{"svm", lowSize(RatioLow), answers(), SVMGaussian},
		{"svm with unknown size", DerivedFeatures{DataSize: SizeUnknown, FtoDRatio: RatioLow}, answers(), SVMGaussian},
		{
			"linear regression", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDDataIORelation, "Y"),
			LinearRegression,
		},
		{
			"polynomial regression", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDDataIORelation, "N"),
			PolynomialRegression,
		},
		{
			"naive bayes on binary", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDDataOutputProb, "Y", q.IDDataCondIndep, "Y"),
			NaiveBayes,
		},
		{
			"lasso", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDDataOutputProb, "Y",
				q.IDDataCondIndep, "N", q.IDDataCorrelation, "Y"),
			LassoRidge,
		},
		{
			"logistic regression", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDDataOutputProb, "Y",
				q.IDDataCondIndep, "N", q.IDDataCorrelation, "N"),
			LogisticRegression,
		},
		{
			"binary without probability", lowSize(RatioHigh),
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDDataOutputProb, "N"),
			PolynomialRegression,
		},
		{"knn", lowSize(RatioHigh), answers(q.IDDataTypeOutput, q.OutputMulticlass), KNN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectSupervised(tt.features, tt.answers)
			assert.Equal(t, KindAlgorithm, got.Kind)
			assert.Equal(t, Supervised, got.Paradigm)
			assert.Equal(t, tt.want, got.Algorithm)
			assert.NotEmpty(t, got.Rule)
		})
	}
}

func TestSelectSupervised_ReportsAssumed(t *testing.T) {
	got := SelectSupervised(lowSize(RatioHigh),
		answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDDataIORelation, "U"))
	assert.Equal(t, PolynomialRegression, got.Algorithm)
	assert.Equal(t, []string{q.IDDataIORelation}, got.Assumed)
}

func TestSelectUnsupervised(t *testing.T) {
	tests := []struct {
		name     string
		features DerivedFeatures
		answers  q.AnswerSet
		want     Algorithm
	}{
		{
			"dbscan", highSize(reproducible),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusOutliers, "Y"),
			DBSCAN,
		},
		{
			"hierarchical on big data", highSize(reproducible),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusOutliers, "N"),
			HierarchicalClustering,
		},
		{
			"gaussian mixture on big data", highSize(),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusOutliers, "Y", q.IDDataOutputProb, "Y"),
			GaussianMixture,
		},
		{
			"kmeans on big data", highSize(),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDDataOutputProb, "N"),
			KMeans,
		},
		{
			"hierarchical on small data", lowSize(RatioLow),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "Y", q.IDUnsupClusGroups, "N"),
			HierarchicalClustering,
		},
		{
			"kmeans when groups are known", lowSize(RatioLow),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "Y", q.IDUnsupClusGroups, "Y"),
			KMeans,
		},
		{
			"gaussian mixture on small data", lowSize(RatioLow),
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "N", q.IDDataOutputProb, "Y"),
			GaussianMixture,
		},
		{
			"svd", lowSize(RatioLow),
			answers(q.IDUnsupGoal, q.UnsupGoalReduction, q.IDUnsupDRTopic, "Y", q.IDDataOutputProb, "Y"),
			SVD,
		},
		{
			"lda", lowSize(RatioLow),
			answers(q.IDUnsupGoal, q.UnsupGoalReduction, q.IDUnsupDRTopic, "Y", q.IDDataOutputProb, "N"),
			LDA,
		},
		{
			"pca", highSize(),
			answers(q.IDUnsupGoal, q.UnsupGoalReduction, q.IDUnsupDRTopic, "N"),
			PCA,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectUnsupervised(tt.features, tt.answers)
			assert.Equal(t, KindAlgorithm, got.Kind)
			assert.Equal(t, tt.want, got.Algorithm)
		})
	}
}

func TestSelectUnsupervised_ReportsAssumed(t *testing.T) {
	tests := []struct {
		name    string
		answers q.AnswerSet
		want    Algorithm
		assumed []string
	}{
		{
			"unknown density variation falls through to kmeans",
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "U",
				q.IDUnsupClusGroups, "N", q.IDDataOutputProb, "N"),
			KMeans,
			[]string{q.IDUnsupClusDV},
		},
		{
			"unknown group count",
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "Y",
				q.IDUnsupClusGroups, "U"),
			HierarchicalClustering,
			[]string{q.IDUnsupClusGroups},
		},
		{
			"every unknown on the path",
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "U",
				q.IDDataOutputProb, "U"),
			KMeans,
			[]string{q.IDUnsupClusDV, q.IDDataOutputProb},
		},
		{
			"nothing assumed",
			answers(q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "N",
				q.IDDataOutputProb, "Y"),
			GaussianMixture,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectUnsupervised(lowSize(RatioLow), tt.answers)
			assert.Equal(t, tt.want, got.Algorithm)
			assert.Equal(t, tt.assumed, got.Assumed)
		})
	}
}

func TestSelectUnsupervised_OtherGoal(t *testing.T) {
	got := SelectUnsupervised(highSize(), answers(q.IDUnsupGoal, "3"))
	assert.Equal(t, NeedsDiscussion(Unsupervised), got)
}

func TestSelectReinforcement(t *testing.T) {
	tests := []struct {
		name    string
		answers q.AnswerSet
		want    Algorithm
	}{
		{
			"alphazero",
			answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDRIModelPreference, "Y", q.IDRIModelAvailability, "Y"),
			AlphaZero,
		},
		{
			"model based, no model yet",
			answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDRIModelPreference, "Y", q.IDRIModelAvailability, "N"),
			ModelBased,
		},
		{
			"model based, continuous without preference",
			answers(q.IDDataTypeOutput, q.OutputContinuous, q.IDRIModelPreference, "N"),
			ModelBased,
		},
		{
			"model based, discrete",
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDRIModelPreference, "Y"),
			ModelBased,
		},
		{
			"policy gradient",
			answers(q.IDDataTypeOutput, q.OutputMulticlass, q.IDRIModelPreference, "N", q.IDRIModelFreeValue, "N"),
			PolicyGradient,
		},
		{
			"state value",
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDRIModelPreference, "N",
				q.IDRIModelFreeValue, "Y", q.IDRIModelFreeValueState, "Y"),
			StateValue,
		},
		{
			"action value",
			answers(q.IDDataTypeOutput, q.OutputBinary, q.IDRIModelPreference, "N",
				q.IDRIModelFreeValue, "Y", q.IDRIModelFreeValueState, "N"),
			ActionValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectReinforcement(DerivedFeatures{}, tt.answers)
			assert.Equal(t, KindAlgorithm, got.Kind)
			assert.Equal(t, Reinforcement, got.Paradigm)
			assert.Equal(t, tt.want, got.Algorithm)
		})
	}
}

func TestSelectors_Idempotent(t *testing.T) {
	f := lowSize(RatioHigh)
	in := answers(q.IDDataTypeOutput, q.OutputBinary, q.IDDataOutputProb, "Y", q.IDDataCondIndep, "U")
	for _, p := range AllParadigms() {
		first := Select(p, f, in)
		assert.Equal(t, first, Select(p, f, in), "paradigm %s", p)
	}
}

func TestSelect_UnknownParadigm(t *testing.T) {
	got := Select(Paradigm("quantum"), DerivedFeatures{}, answers())
	assert.Equal(t, KindNeedsDiscussion, got.Kind)
}

func TestDecide(t *testing.T) {
	in := answers(
		q.IDDataAvailability, "U",
		q.IDDataCreativity, "Y",
		q.IDDataTypeOutput, q.OutputBinary,
		q.IDRIModelPreference, "U",
		q.IDRIModelFreeValue, "N",
	)
	got, err := Decide(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, PolicyGradient, got.Algorithm)
	assert.Equal(t, []string{q.IDDataAvailability, q.IDRIModelPreference}, got.Assumed)

	got, err = Decide(answers(q.IDDataAvailability, "N", q.IDDataCreativity, "N"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, NoMLNeeded(), got)
}

func TestDecide_Scenarios(t *testing.T) {
	t.Run("random forest", func(t *testing.T) {
		in := answers(
			q.IDDataAvailability, "Y", q.IDDataLabel, "Y", q.IDDataProgrammability, "N", q.IDDataKnowledge, "Y",
			q.IDDataSizeBytes, "10G", q.IDMetricInterpretability, "4", q.IDMetricSpeed, "1",
		)
		got, err := Decide(in, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, RandomForest, got.Algorithm)
	})
	t.Run("linear regression", func(t *testing.T) {
		in := answers(
			q.IDDataAvailability, "Y", q.IDDataLabel, "Y", q.IDDataProgrammability, "N", q.IDDataKnowledge, "Y",
			q.IDDataSizeBytes, "100K", q.IDDataFeatures, "60",
			q.IDDataTypeOutput, q.OutputContinuous, q.IDDataIORelation, "Y",
		)
		got, err := Decide(in, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, LinearRegression, got.Algorithm)
	})
	t.Run("hierarchical clustering", func(t *testing.T) {
		in := answers(
			q.IDDataAvailability, "Y", q.IDDataLabel, "N", q.IDDataProgrammability, "N", q.IDDataKnowledge, "Y",
			q.IDDataSizeSamples, "5T",
			q.IDUnsupGoal, q.UnsupGoalClustering, q.IDUnsupClusDV, "Y", q.IDUnsupClusGroups, "N",
		)
		got, err := Decide(in, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, Unsupervised, got.Paradigm)
		assert.Equal(t, HierarchicalClustering, got.Algorithm)
	})
	t.Run("world models", func(t *testing.T) {
		in := answers(
			q.IDDataAvailability, "N", q.IDDataCreativity, "Y",
			q.IDDataTypeOutput, q.OutputContinuous, q.IDRIModelPreference, "Y", q.IDRIModelAvailability, "N",
		)
		got, err := Decide(in, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, ModelBased, got.Algorithm)
	})
}

func TestRecommendation_WithAssumed(t *testing.T) {
	r := Recommendation{Kind: KindAlgorithm, Assumed: []string{"b", "c"}}
	got := r.WithAssumed("a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, got.Assumed)
	assert.Equal(t, []string{"b", "c"}, r.Assumed)
}

func TestTables_RulesNamed(t *testing.T) {
	for _, tbl := range Tables() {
		require.NotEmpty(t, tbl.Rules)
		for _, r := range tbl.Rules {
			assert.NotEmpty(t, r.Name, "paradigm %s", tbl.Paradigm)
			assert.NotEmpty(t, r.Algorithm, "paradigm %s rule %q", tbl.Paradigm, r.Name)
		}
	}
}
