package recognize

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/goimpressum/internal/normalize"
)

// ErrNoExamples is returned when training receives no usable examples.
var ErrNoExamples = errors.New("no training examples")

// Model is an immutable phrase-gazetteer recognizer built offline from
// labeled examples. A new training run produces a new versioned handle;
// existing handles are never mutated.
type Model struct {
	// Version identifies this trained model artifact.
	Version string `json:"version"`
	// TrainedAt records when the model was produced.
	TrainedAt time.Time `json:"trained_at"`
	// Phrases holds the known phrases per label, longest first.
	Phrases map[Label][]string `json:"phrases"`
}

var _ Recognizer = (*Model)(nil)

// Train builds a new model from labeled examples. Phrases are collected
// per label, folded to the canonical normalized text form (recognition
// runs over normalized text), de-duplicated, and ordered longest first
// so that longer matches win during recognition.
func Train(examples []Example) (*Model, error) {
	if len(examples) == 0 {
		return nil, ErrNoExamples
	}

	seen := make(map[Label]map[string]struct{})
	for _, example := range examples {
		for _, entity := range example.Entities {
			if entity.Start < 0 || entity.End > len(example.Text) || entity.Start >= entity.End {
				return nil, fmt.Errorf("example %q: invalid span [%d,%d)", example.Text, entity.Start, entity.End)
			}

			phrase := normalize.Normalize(example.Text[entity.Start:entity.End])
			if phrase == "" {
				continue
			}

			if seen[entity.Label] == nil {
				seen[entity.Label] = make(map[string]struct{})
			}
			seen[entity.Label][phrase] = struct{}{}
		}
	}

	phrases := make(map[Label][]string, len(seen))
	for label, set := range seen {
		list := make([]string, 0, len(set))
		for phrase := range set {
			list = append(list, phrase)
		}
		sort.Slice(list, func(i, j int) bool {
			if len(list[i]) != len(list[j]) {
				return len(list[i]) > len(list[j])
			}
			return list[i] < list[j]
		})
		phrases[label] = list
	}

	return &Model{
		Version:   uuid.NewString(),
		TrainedAt: time.Now().UTC(),
		Phrases:   phrases,
	}, nil
}

// Recognize returns every known-phrase occurrence in text as a labeled
// span, ordered by position. Overlapping occurrences resolve to the
// longest phrase because phrases are scanned longest first.
func (m *Model) Recognize(text string) []Span {
	var spans []Span
	claimed := make([]bool, len(text))

	for _, label := range []Label{LabelOrganization, LabelPerson, LabelEmail} {
		for _, phrase := range m.Phrases[label] {
			for offset := 0; offset < len(text); {
				idx := strings.Index(text[offset:], phrase)
				if idx < 0 {
					break
				}

				start := offset + idx
				end := start + len(phrase)
				if !anyClaimed(claimed, start, end) {
					markClaimed(claimed, start, end)
					spans = append(spans, Span{Text: phrase, Label: label, Start: start})
				}
				offset = start + 1
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// SpansByLabel returns the text of every span with the given label,
// in position order.
func SpansByLabel(spans []Span, label Label) []string {
	var texts []string
	for _, span := range spans {
		if span.Label == label {
			texts = append(texts, span.Text)
		}
	}
	return texts
}

func anyClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func markClaimed(claimed []bool, start, end int) {
	for i := start; i < end; i++ {
		claimed[i] = true
	}
}

// Save writes the model artifact as JSON to path.
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	return nil
}

// Load reads a model artifact from path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return &model, nil
}

// LoadOrTrain loads the model artifact at path. If the artifact is
// missing, it makes one on-demand training run over the default corpus
// and persists the result. A failure of that attempt is fatal to the
// caller: there is no fallback recognition path.
func LoadOrTrain(path string) (*Model, error) {
	model, loadErr := Load(path)
	if loadErr == nil {
		return model, nil
	}

	model, trainErr := Train(DefaultCorpus())
	if trainErr != nil {
		return nil, fmt.Errorf("load failed (%v) and on-demand training failed: %w", loadErr, trainErr)
	}

	// Persisting the freshly trained artifact is best-effort; the
	// in-memory handle is already usable.
	_ = model.Save(path)

	return model, nil
}
