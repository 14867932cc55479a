package engine

import (
	"fmt"
	"slices"
)

// Paradigm is a machine learning family.
type Paradigm string

const (
	Supervised    Paradigm = "supervised"
	Unsupervised  Paradigm = "unsupervised"
	Reinforcement Paradigm = "reinforcement"
)

// AllParadigms returns the paradigms in display order.
func AllParadigms() []Paradigm {
	return []Paradigm{Supervised, Unsupervised, Reinforcement}
}

// DisplayName returns a human-readable paradigm name.
func (p Paradigm) DisplayName() string {
	switch p {
	case Supervised:
		return "Supervised Learning"
	case Unsupervised:
		return "Unsupervised Learning"
	case Reinforcement:
		return "Reinforcement Learning"
	default:
		return string(p)
	}
}

// Algorithm is a recommended starting technique.
type Algorithm string

// Supervised algorithms.
const (
	DecisionTree         Algorithm = "Decision Tree"
	RandomForest         Algorithm = "Random Forest"
	RNN                  Algorithm = "RNN"
	CNN                  Algorithm = "CNN"
	NaiveBayes           Algorithm = "Naive Bayes"
	ANN                  Algorithm = "ANN"
	SVMGaussian          Algorithm = "SVM (Gaussian kernel)"
	LinearRegression     Algorithm = "Linear Regression / Linear SVM"
	PolynomialRegression Algorithm = "Polynomial Regression / nonlinear SVM"
	LassoRidge           Algorithm = "LASSO / Ridge Regression"
	LogisticRegression   Algorithm = "Logistic Regression"
	KNN                  Algorithm = "KNN"
)

// Unsupervised algorithms.
const (
	HierarchicalClustering Algorithm = "Hierarchical Clustering"
	DBSCAN                 Algorithm = "DBSCAN"
	GaussianMixture        Algorithm = "Gaussian Mixture"
	KMeans                 Algorithm = "KMeans"
	SVD                    Algorithm = "SVD"
	LDA                    Algorithm = "LDA"
	PCA                    Algorithm = "PCA"
)

// Reinforcement algorithms.
const (
	AlphaZero      Algorithm = "AlphaZero"
	ModelBased     Algorithm = "World Models / I2A / MBMF / MBVE"
	PolicyGradient Algorithm = "Policy Gradient / Actor-Critic"
	StateValue     Algorithm = "Monte Carlo / TD(0) / TD(λ)"
	ActionValue    Algorithm = "SARSA / Q-Learning / Deep Q-Networks"
)

// Kind tags a Recommendation.
type Kind int

const (
	KindNoMLNeeded Kind = iota
	KindNeedsDiscussion
	KindAlgorithm
)

func (k Kind) String() string {
	switch k {
	case KindNoMLNeeded:
		return "no-ml-needed"
	case KindNeedsDiscussion:
		return "needs-discussion"
	case KindAlgorithm:
		return "algorithm"
	default:
		return "unknown"
	}
}

// Recommendation is the terminal outcome of a session.
type Recommendation struct {
	Kind Kind

	// Paradigm is set for KindAlgorithm, and for KindNeedsDiscussion when
	// a selector ran.
	Paradigm  Paradigm
	Algorithm Algorithm

	// Rule names the decision path that produced the result. Empty for
	// fallbacks.
	Rule string

	// Assumed lists questions answered Unknown on the decision path. Each
	// was followed along its "no" edge.
	Assumed []string
}

// NoMLNeeded builds the no-ML outcome.
func NoMLNeeded(assumed ...string) Recommendation {
	return Recommendation{Kind: KindNoMLNeeded, Assumed: assumed}
}

// NeedsDiscussion builds the fallback outcome for p.
func NeedsDiscussion(p Paradigm) Recommendation {
	return Recommendation{Kind: KindNeedsDiscussion, Paradigm: p}
}

// WithAssumed returns a copy of r with ids prepended to Assumed, skipping
// duplicates.
func (r Recommendation) WithAssumed(ids ...string) Recommendation {
	merged := make([]string, 0, len(ids)+len(r.Assumed))
	for _, id := range append(slices.Clone(ids), r.Assumed...) {
		if !slices.Contains(merged, id) {
			merged = append(merged, id)
		}
	}
	r.Assumed = merged
	return r
}

func (r Recommendation) String() string {
	switch r.Kind {
	case KindNoMLNeeded:
		return "no ML needed"
	case KindNeedsDiscussion:
		if r.Paradigm != "" {
			return fmt.Sprintf("needs discussion (%s)", r.Paradigm)
		}
		return "needs discussion"
	default:
		return fmt.Sprintf("%s: %s", r.Paradigm, r.Algorithm)
	}
}
