package report

import "github.com/abhisek/algoselect/internal/engine"

var blurbs = map[engine.Algorithm]string{
	engine.DecisionTree:         "Fast to train and easy to explain; each prediction is a readable path of rules.",
	engine.RandomForest:         "An ensemble of trees. Keeps much of the interpretability while being more accurate than a single tree.",
	engine.RNN:                  "Recurrent networks model token order, which suits free text.",
	engine.CNN:                  "Convolutional networks learn spatial features directly from pixels.",
	engine.NaiveBayes:           "A probabilistic classifier that assumes independent features and outputs class probabilities.",
	engine.ANN:                  "A feed-forward neural network; flexible when interpretability is not required.",
	engine.SVMGaussian:          "A kernel SVM works well when there are few features relative to the amount of data.",
	engine.LinearRegression:     "The output is linear in the inputs, so a linear model is the natural baseline.",
	engine.PolynomialRegression: "Non-linear relationships call for polynomial features or a non-linear kernel.",
	engine.LassoRidge:           "Regularized linear models cope with many features and produce calibrated scores.",
	engine.LogisticRegression:   "A simple probabilistic classifier; pair it with feature selection when features are correlated.",
	engine.KNN:                  "Nearest neighbours handles many classes without a parametric model.",

	engine.HierarchicalClustering: "Builds a tree of clusters, so the number of groups does not need to be known up front.",
	engine.DBSCAN:                 "Density based clustering that leaves outliers out of every group.",
	engine.GaussianMixture:        "Soft clustering that gives each point a probability for every cluster.",
	engine.KMeans:                 "Simple and fast hard clustering into k groups.",
	engine.SVD:                    "Matrix factorization for latent topics with a probabilistic reading of the factors.",
	engine.LDA:                    "Latent Dirichlet Allocation discovers topics in a collection of documents.",
	engine.PCA:                    "Projects the data onto the directions of highest variance.",

	engine.AlphaZero:      "Plans with a known model of the environment using tree search and self-play.",
	engine.ModelBased:     "Learn a model of the environment and plan or imagine rollouts with it.",
	engine.PolicyGradient: "Optimizes the policy directly, which also works for continuous or stochastic actions.",
	engine.StateValue:     "Estimates the value of states from sampled returns or bootstrapped targets.",
	engine.ActionValue:    "Learns the value of state-action pairs and acts greedily on it.",
}

// Describe returns a one-line note about a, or "" if none is known.
func Describe(a engine.Algorithm) string {
	return blurbs[a]
}
