package questionnaire

import (
	"fmt"
	"slices"
)

// Gating question ids.
const (
	IDDataAvailability    = "data_availability"
	IDDataLabel           = "data_label"
	IDDataProgrammability = "data_programmability"
	IDDataKnowledge       = "data_knowledge"
	IDDataPattern         = "data_pattern"
	IDDataCreativity      = "data_creativity"
)

// Generic question ids.
const (
	IDDataGoal               = "data_goal"
	IDMetricAccuracy         = "metric_accuracy"
	IDMetricSpeed            = "metric_speed"
	IDMetricInterpretability = "metric_interpretability"
	IDMetricImplementation   = "metric_implementation"
	IDMetricReproducibility  = "metric_reproducibility"
	IDDataColumn             = "data_column"
	IDDataSignalType         = "data_signal_type"
	IDDataNature             = "data_generic_nature"
	IDDataMissing            = "data_generic_missing"
	IDDataSizeBytes          = "data_size_bytes"
	IDDataSizeSamples        = "data_size_samples"
	IDDataFeatures           = "data_features"
	IDDataTypeOutput         = "data_type_output"
	IDDataOutputProb         = "data_output_prob"
)

// Paradigm-specific question ids.
const (
	IDDataIORelation  = "data_io_relation"
	IDDataCondIndep   = "data_cond_indep"
	IDDataCorrelation = "data_correlation"

	IDUnsupGoal         = "unsup_goal"
	IDUnsupClusDV       = "unsup_clus_dv"
	IDUnsupClusGroups   = "unsup_clus_groups"
	IDUnsupClusOutliers = "unsup_clus_outliers"
	IDUnsupDRTopic      = "unsup_dr_topic"

	IDRIModelPreference     = "ri_model_preference"
	IDRIModelAvailability   = "ri_model_availability"
	IDRIModelFreeValue      = "ri_modelfree_value"
	IDRIModelFreeValueState = "ri_modelfree_value_state"
)

// Stored choice values. Choice answers are normalized to the 1-based option
// index before they enter an AnswerSet.
const (
	ColumnFeatures = "1"
	ColumnText     = "2"
	ColumnSignal   = "3"

	SignalImage      = "1"
	SignalAudio      = "2"
	SignalTimeseries = "3"

	OutputContinuous = "1"
	OutputBinary     = "2"
	OutputMulticlass = "3"

	UnsupGoalClustering = "1"
	UnsupGoalReduction  = "2"
)

const (
	yesNoHelp  = "Y/N/U - Yes/No/Unknown"
	ratingHelp = "Enter 1-5: 1 being least important, and 5 being most important"
)

// catalog is the package-level question index, built in init().
var catalog *index

type index struct {
	questions []Question
	byID      map[string]int
	byStage   map[Stage][]Question
}

func init() {
	catalog = buildIndex(seed())
}

func buildIndex(qs []Question) *index {
	idx := &index{
		questions: qs,
		byID:      make(map[string]int, len(qs)),
		byStage:   make(map[Stage][]Question),
	}
	for i, q := range qs {
		idx.byID[q.ID] = i
		idx.byStage[q.Stage] = append(idx.byStage[q.Stage], q)
	}
	return idx
}

// All returns every question in catalog order.
func All() []Question {
	return slices.Clone(catalog.questions)
}

// ByStage returns the questions of a stage in the order they are asked.
func ByStage(s Stage) []Question {
	return slices.Clone(catalog.byStage[s])
}

// Get returns the question with the given id.
func Get(id string) (Question, error) {
	i, ok := catalog.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("unknown question %q", id)
	}
	return catalog.questions[i], nil
}

// MustGet is Get for ids known at compile time.
func MustGet(id string) Question {
	q, err := Get(id)
	if err != nil {
		panic(err)
	}
	return q
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateQuestions(catalog.questions)
}

func seed() []Question {
	return []Question{
		// Gating. Order here is display order only; the engine decides
		// which of these are asked.
		{
			ID: IDDataAvailability, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Do you have access to data about different situations, or that describes a lot of examples of situations?",
		},
		{
			ID: IDDataLabel, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Does the data about those situations carry labels, i.e. the outcome or action you want to predict?",
		},
		{
			ID: IDDataProgrammability, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Can a program or set of rules decide what actions to take based on the data you have about the situations?",
		},
		{
			ID: IDDataKnowledge, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Could a knowledgeable human decide what actions to take based on the data you have about the situations?",
		},
		{
			ID: IDDataPattern, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Could there be patterns in these situations that humans haven't recognized before?",
		},
		{
			ID: IDDataCreativity, Stage: StageGating, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Will a system be able to gather a lot of data by trying sequences of actions in many different situations and seeing the results?",
		},

		// Generic.
		{
			ID: IDDataGoal, Stage: StageGeneric, Kind: KindChoice, Default: "3",
			Options: []string{"Predict", "Describe", "Explore"},
			Prompt:  "What is your goal with the data?",
			Help:    "Enter one of Predict/Describe/Explore",
		},
		{
			ID: IDMetricAccuracy, Stage: StageGeneric, Kind: KindRating, Default: "1", Help: ratingHelp,
			Prompt: "How important is the metric 'Accuracy' for you?",
		},
		{
			ID: IDMetricSpeed, Stage: StageGeneric, Kind: KindRating, Default: "1", Help: ratingHelp,
			Prompt: "How important is the metric 'Speed' for you?",
		},
		{
			ID: IDMetricInterpretability, Stage: StageGeneric, Kind: KindRating, Default: "1", Help: ratingHelp,
			Prompt: "How important is the metric 'Interpretability' for you?",
		},
		{
			ID: IDMetricImplementation, Stage: StageGeneric, Kind: KindRating, Default: "1", Help: ratingHelp,
			Prompt: "How important is the metric 'Ease of Implementation and Maintenance' for you?",
		},
		{
			ID: IDMetricReproducibility, Stage: StageGeneric, Kind: KindRating, Default: "1", Help: ratingHelp,
			Prompt: "How important is the metric 'Reproducibility' for you?",
		},
		{
			ID: IDDataColumn, Stage: StageGeneric, Kind: KindChoice, Default: ColumnFeatures,
			Options: []string{"Features", "Text", "Signal"},
			Prompt:  "What do the columns represent: well defined features, free text, or raw signals (timeseries, pixels, etc.)?",
			Help:    "Enter one of Features/Text/Signal",
		},
		{
			ID: IDDataSignalType, Stage: StageGeneric, Kind: KindChoice, Default: SignalImage,
			Options: []string{"Image", "Audio", "Timeseries"},
			Prompt:  "What kind of signal is it?",
			Help:    "Enter one of Image/Audio/Timeseries",
			When: func(a AnswerSet) bool {
				return a.Is(IDDataColumn, ColumnSignal)
			},
		},
		{
			ID: IDDataNature, Stage: StageGeneric, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Are you aware of any distribution or relationship inherent to the data that we can take advantage of?",
		},
		{
			ID: IDDataMissing, Stage: StageGeneric, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Are there any missing values in the data?",
		},
		{
			ID: IDDataSizeBytes, Stage: StageGeneric, Kind: KindSize, Default: "1G", Units: "KMGT",
			Prompt: "How big is the data in bytes?",
			Help:   "Number and unit: K for Kilo, M for Mega, G for Giga, T for Tera. Ex: 10G for 10 Gigabytes",
		},
		{
			ID: IDDataSizeSamples, Stage: StageGeneric, Kind: KindSize, Default: "1M", Units: "TMB",
			Prompt: "How many samples does the data have?",
			Help:   "Number and unit: T for Thousands, M for Millions, B for Billions. Ex: 20T for 20 thousand samples",
		},
		{
			ID: IDDataFeatures, Stage: StageGeneric, Kind: KindCount, Default: "10",
			Prompt: "How many features (columns) does each sample have?",
			Help:   "Enter a whole number",
		},
		{
			ID: IDDataTypeOutput, Stage: StageGeneric, Kind: KindChoice, Default: OutputContinuous,
			Options: []string{"Numerical-Continuous", "Categorical-Binary", "Categorical-Multiclass"},
			Prompt:  "What type of output do you expect?",
			Help:    "Enter one of Numerical-Continuous/Categorical-Binary/Categorical-Multiclass",
		},
		{
			ID: IDDataOutputProb, Stage: StageGeneric, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Do you need the output as a probability?",
		},

		// Supervised.
		{
			ID: IDDataIORelation, Stage: StageSupervised, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Is the relationship between the inputs and the output linear?",
			When: func(a AnswerSet) bool {
				return a.Is(IDDataTypeOutput, OutputContinuous)
			},
		},
		{
			ID: IDDataCondIndep, Stage: StageSupervised, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Are the features conditionally independent of each other given the output?",
			When:   binaryProbabilistic,
		},
		{
			ID: IDDataCorrelation, Stage: StageSupervised, Kind: KindYesNo, Default: "Y", Help: yesNoHelp,
			Prompt: "Are the features free of high correlation with each other?",
			When: func(a AnswerSet) bool {
				return binaryProbabilistic(a) && !a.Yes(IDDataCondIndep)
			},
		},

		// Unsupervised.
		{
			ID: IDUnsupGoal, Stage: StageUnsupervised, Kind: KindChoice, Default: UnsupGoalClustering,
			Options: []string{"Clustering", "Dimensionality reduction", "Other"},
			Prompt:  "What do you want to do with the unlabelled data?",
			Help:    "Enter one of Clustering/Dimensionality reduction/Other",
		},
		{
			ID: IDUnsupClusDV, Stage: StageUnsupervised, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Are you aware of variations in density across the data?",
			When:   clustering,
		},
		{
			ID: IDUnsupClusGroups, Stage: StageUnsupervised, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Do you know how many groups (clusters) to expect?",
			When:   clustering,
		},
		{
			ID: IDUnsupClusOutliers, Stage: StageUnsupervised, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Does the data contain outliers that should be left out of any group?",
			When:   clustering,
		},
		{
			ID: IDUnsupDRTopic, Stage: StageUnsupervised, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Would you prefer topic modeling (the data is a collection of documents)?",
			When: func(a AnswerSet) bool {
				return a.Is(IDUnsupGoal, UnsupGoalReduction)
			},
		},

		// Reinforcement.
		{
			ID: IDRIModelPreference, Stage: StageReinforcement, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Do you prefer a model-based approach (learning or using a model of the environment)?",
		},
		{
			ID: IDRIModelAvailability, Stage: StageReinforcement, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Is a model of the environment already available?",
			When: func(a AnswerSet) bool {
				return a.Yes(IDRIModelPreference) && a.Is(IDDataTypeOutput, OutputContinuous)
			},
		},
		{
			ID: IDRIModelFreeValue, Stage: StageReinforcement, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Do you want to learn a value function rather than a policy directly?",
			When:   modelFree,
		},
		{
			ID: IDRIModelFreeValueState, Stage: StageReinforcement, Kind: KindYesNo, Default: "N", Help: yesNoHelp,
			Prompt: "Should the value be estimated for states only (rather than state-action pairs)?",
			When: func(a AnswerSet) bool {
				return modelFree(a) && a.Yes(IDRIModelFreeValue)
			},
		},
	}
}

func binaryProbabilistic(a AnswerSet) bool {
	return a.Is(IDDataTypeOutput, OutputBinary) && a.Yes(IDDataOutputProb)
}

func clustering(a AnswerSet) bool {
	return a.Is(IDUnsupGoal, UnsupGoalClustering)
}

func modelFree(a AnswerSet) bool {
	return !a.Yes(IDRIModelPreference) && !a.Is(IDDataTypeOutput, OutputContinuous)
}
