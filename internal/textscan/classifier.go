package textscan

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mikey/fraud-detector/internal/core"
	"github.com/mikey/fraud-detector/internal/refdata"
)

const (
	ngramMin    = 1
	ngramMax    = 4
	maxFeatures = 1000
	// holdoutFraction of the corpus is reserved for the train-time accuracy
	// evaluation.
	holdoutFraction = 0.2

	artifactVersion = 1
)

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// featureWeights holds the per-feature statistics of a trained model
type featureWeights struct {
	IDF      float64 `json:"idf"`
	LogPhish float64 `json:"log_phish"`
	LogLegit float64 `json:"log_legit"`
}

// model is the immutable trained state. It is built once and never mutated,
// so concurrent inference needs no locks.
type model struct {
	Version  int                       `json:"version"`
	Vocab    map[string]featureWeights `json:"vocab"`
	LogPrior float64                   `json:"log_prior"`
}

// Classifier produces a phishing probability for free text. Lifecycle:
// uninitialized -> training -> ready, or -> fallback permanently when
// training and loading both fail.
type Classifier struct {
	logger *zap.Logger
	state  atomic.Int32
	model  atomic.Pointer[model]
}

// NewClassifier creates an untrained classifier
func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// State returns the current lifecycle state
func (c *Classifier) State() core.ClassifierState {
	return core.ClassifierState(c.state.Load())
}

// Initialize loads a persisted model if one exists, otherwise trains from
// the fixed corpus and saves the artifact. On any unrecoverable failure the
// classifier enters fallback mode for the rest of the process lifetime.
func (c *Classifier) Initialize(ctx context.Context, store core.ModelStore, key string, seed int64) {
	c.state.Store(int32(core.ClassifierTraining))

	if store != nil {
		artifact, err := store.Load(ctx, key)
		if err != nil {
			c.logger.Warn("Failed to load classifier artifact, retraining", zap.Error(err))
		} else if artifact != nil {
			if err := c.loadArtifact(artifact); err == nil {
				c.state.Store(int32(core.ClassifierReady))
				c.logger.Info("Loaded trained classifier",
					zap.String("key", key),
					zap.Int("features", len(c.model.Load().Vocab)))
				return
			} else {
				c.logger.Warn("Persisted classifier artifact is unusable, retraining", zap.Error(err))
			}
		}
	}

	if err := c.Train(refdata.TrainingCorpus(), seed); err != nil {
		c.logger.Error("Classifier training failed, falling back to keyword heuristics", zap.Error(err))
		c.state.Store(int32(core.ClassifierFallback))
		return
	}
	c.state.Store(int32(core.ClassifierReady))

	if store != nil {
		artifact, err := c.marshalArtifact()
		if err == nil {
			err = store.Save(ctx, key, artifact)
		}
		if err != nil {
			// Not fatal: the trained in-memory model still serves
			c.logger.Warn("Failed to persist classifier artifact", zap.Error(err))
		}
	}
}

// Train fits the model on the labeled corpus: TF-IDF weighted n-grams into a
// class-balanced naive Bayes, with a deterministic seeded holdout split whose
// accuracy is logged.
func (c *Classifier) Train(samples []refdata.TrainingSample, seed int64) error {
	if len(samples) < 10 {
		return fmt.Errorf("corpus too small: %d samples", len(samples))
	}

	rng := rand.New(rand.NewSource(seed))
	shuffled := make([]refdata.TrainingSample, len(samples))
	copy(shuffled, samples)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	holdout := int(float64(len(shuffled)) * holdoutFraction)
	test := shuffled[:holdout]
	train := shuffled[holdout:]

	m, err := fit(train)
	if err != nil {
		return err
	}

	correct := 0
	for _, s := range test {
		p := m.predict(s.Text)
		if (p > 0.5) == s.Phishing {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(test))

	c.model.Store(m)
	c.logger.Info("Classifier training complete",
		zap.Int("train_samples", len(train)),
		zap.Int("test_samples", len(test)),
		zap.Int("features", len(m.Vocab)),
		zap.Float64("holdout_accuracy", accuracy))
	return nil
}

// PredictPhishing returns the probability in [0,1] that text is phishing.
// It fails unless the classifier is ready.
func (c *Classifier) PredictPhishing(text string) (float64, error) {
	if c.State() != core.ClassifierReady {
		return 0, fmt.Errorf("classifier not ready (state: %s)", c.State())
	}
	m := c.model.Load()
	if m == nil {
		return 0, fmt.Errorf("classifier has no model")
	}
	return m.predict(text), nil
}

func (c *Classifier) marshalArtifact() ([]byte, error) {
	m := c.model.Load()
	if m == nil {
		return nil, fmt.Errorf("no trained model to marshal")
	}
	return json.Marshal(m)
}

func (c *Classifier) loadArtifact(artifact []byte) error {
	var m model
	if err := json.Unmarshal(artifact, &m); err != nil {
		return fmt.Errorf("failed to decode artifact: %w", err)
	}
	if m.Version != artifactVersion {
		return fmt.Errorf("unsupported artifact version %d", m.Version)
	}
	if len(m.Vocab) == 0 {
		return fmt.Errorf("artifact has empty vocabulary")
	}
	c.model.Store(&m)
	return nil
}

// extractFeatures tokenizes text into stopword-filtered word n-grams
func extractFeatures(text string) map[string]int {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	filtered := words[:0]
	for _, w := range words {
		if _, stop := refdata.Stopwords[w]; !stop {
			filtered = append(filtered, w)
		}
	}

	features := make(map[string]int)
	for n := ngramMin; n <= ngramMax; n++ {
		for i := 0; i+n <= len(filtered); i++ {
			features[strings.Join(filtered[i:i+n], " ")]++
		}
	}
	return features
}

// fit builds the TF-IDF vocabulary and per-class log-probabilities with
// Laplace smoothing. Class priors are balanced regardless of corpus skew.
func fit(train []refdata.TrainingSample) (*model, error) {
	docFreq := make(map[string]int)
	collFreq := make(map[string]int)
	perDoc := make([]map[string]int, len(train))

	for i, s := range train {
		features := extractFeatures(s.Text)
		perDoc[i] = features
		for f, count := range features {
			docFreq[f]++
			collFreq[f] += count
		}
	}
	if len(docFreq) == 0 {
		return nil, fmt.Errorf("no features extracted from corpus")
	}

	// Cap the vocabulary at the most frequent features
	vocabTerms := topFeatures(collFreq, maxFeatures)

	n := float64(len(train))
	idf := make(map[string]float64, len(vocabTerms))
	for _, f := range vocabTerms {
		idf[f] = math.Log((n+1)/float64(docFreq[f]+1)) + 1
	}

	// Accumulate TF-IDF mass per class
	phishMass := make(map[string]float64, len(vocabTerms))
	legitMass := make(map[string]float64, len(vocabTerms))
	var phishTotal, legitTotal float64
	for i, s := range train {
		for f, count := range perDoc[i] {
			w, ok := idf[f]
			if !ok {
				continue
			}
			mass := float64(count) * w
			if s.Phishing {
				phishMass[f] += mass
				phishTotal += mass
			} else {
				legitMass[f] += mass
				legitTotal += mass
			}
		}
	}

	vocabSize := float64(len(vocabTerms))
	vocab := make(map[string]featureWeights, len(vocabTerms))
	for _, f := range vocabTerms {
		vocab[f] = featureWeights{
			IDF:      idf[f],
			LogPhish: math.Log((phishMass[f] + 1) / (phishTotal + vocabSize)),
			LogLegit: math.Log((legitMass[f] + 1) / (legitTotal + vocabSize)),
		}
	}

	return &model{
		Version:  artifactVersion,
		Vocab:    vocab,
		LogPrior: math.Log(0.5),
	}, nil
}

// predict computes the sigmoid of the naive Bayes log-odds
func (m *model) predict(text string) float64 {
	sPhish := m.LogPrior
	sLegit := m.LogPrior
	for f, count := range extractFeatures(text) {
		fw, ok := m.Vocab[f]
		if !ok {
			continue
		}
		mass := float64(count) * fw.IDF
		sPhish += fw.LogPhish * mass
		sLegit += fw.LogLegit * mass
	}
	logOdds := sPhish - sLegit
	return 1.0 / (1.0 + math.Exp(-logOdds))
}

// topFeatures returns up to limit features ordered by collection frequency,
// with ties broken lexicographically for determinism.
func topFeatures(collFreq map[string]int, limit int) []string {
	terms := make([]string, 0, len(collFreq))
	for f := range collFreq {
		terms = append(terms, f)
	}
	// Ties break lexicographically so selection is deterministic
	sort.Slice(terms, func(i, j int) bool {
		a, b := terms[i], terms[j]
		if collFreq[a] != collFreq[b] {
			return collFreq[a] > collFreq[b]
		}
		return a < b
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
