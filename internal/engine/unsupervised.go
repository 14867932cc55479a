package engine

import (
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// UnsupervisedTable is the unsupervised decision table. Clustering rows that
// do not settle on DBSCAN or Hierarchical Clustering fall into the
// probabilistic rows at the end of the clustering block.
var UnsupervisedTable = Table{
	Paradigm: Unsupervised,
	Rules: []Rule{
		{
			Name:      "clustering, size=high, reproducibility, outliers",
			Algorithm: DBSCAN,
			match: func(in Input) bool {
				return clusteringGoal(in) && in.high() && in.Features.ReproducibilityPriority &&
					in.yes(q.IDUnsupClusOutliers)
			},
		},
		{
			Name:      "clustering, size=high, reproducibility, no outliers",
			Algorithm: HierarchicalClustering,
			match: func(in Input) bool {
				return clusteringGoal(in) && in.high() && in.Features.ReproducibilityPriority
			},
		},
		{
			Name:      "clustering, size!=high, density variation, unknown group count",
			Algorithm: HierarchicalClustering,
			match: func(in Input) bool {
				return clusteringGoal(in) && !in.high() &&
					in.yes(q.IDUnsupClusDV) && !in.yes(q.IDUnsupClusGroups)
			},
		},
		{
			Name:      "clustering, probabilistic, output_prob",
			Algorithm: GaussianMixture,
			match: func(in Input) bool {
				return clusteringGoal(in) && in.yes(q.IDDataOutputProb)
			},
		},
		{
			Name:      "clustering, probabilistic, no output_prob",
			Algorithm: KMeans,
			match:     clusteringGoal,
		},
		{
			Name:      "reduction, topic modeling, output_prob",
			Algorithm: SVD,
			match: func(in Input) bool {
				return reductionGoal(in) && in.yes(q.IDUnsupDRTopic) && in.yes(q.IDDataOutputProb)
			},
		},
		{
			Name:      "reduction, topic modeling, no output_prob",
			Algorithm: LDA,
			match: func(in Input) bool {
				return reductionGoal(in) && in.yes(q.IDUnsupDRTopic)
			},
		},
		{
			Name:      "reduction, no topic modeling",
			Algorithm: PCA,
			match:     reductionGoal,
		},
	},
}

// SelectUnsupervised runs the unsupervised decision table.
func SelectUnsupervised(f DerivedFeatures, answers q.AnswerSet) Recommendation {
	return UnsupervisedTable.Select(Input{Features: f, Answers: answers})
}

func clusteringGoal(in Input) bool {
	return in.is(q.IDUnsupGoal, q.UnsupGoalClustering)
}

func reductionGoal(in Input) bool {
	return in.is(q.IDUnsupGoal, q.UnsupGoalReduction)
}
