// Package ml loads the pre-trained premium model and serves predictions from
// it. The artifact is a JSON decision forest; it is read once at startup and
// never mutated afterwards, so a *Forest is safe for concurrent use.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

// FormatVersion is the only artifact layout this package understands.
const FormatVersion = 1

// Feature names accepted in split nodes.
const (
	FeatureBMI           = "bmi"
	FeatureIncomeLPA     = "income_lpa"
	FeatureCityTier      = "city_tier"
	FeatureLifestyleRisk = "lifestyle_risk"
	FeatureAgeGroup      = "age_group"
	FeatureOccupation    = "occupation"
)

var numericFeatures = map[string]bool{
	FeatureBMI:       true,
	FeatureIncomeLPA: true,
	FeatureCityTier:  true,
}

var categoricalFeatures = map[string]bool{
	FeatureLifestyleRisk: true,
	FeatureAgeGroup:      true,
	FeatureOccupation:    true,
}

// Artifact is the serialized model.
type Artifact struct {
	FormatVersion int      `json:"format_version"`
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	Classes       []string `json:"classes"`
	Trees         [][]Node `json:"trees"`
}

// Node is one entry of a tree's flat node array. A node with Class set is a
// leaf; otherwise it splits on Feature and routes to Left or Right.
type Node struct {
	Feature    string   `json:"feature,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Left       int      `json:"left,omitempty"`
	Right      int      `json:"right,omitempty"`
	Class      *int     `json:"class,omitempty"`
}

func (n Node) isLeaf() bool {
	return n.Class != nil
}

// Info describes a loaded forest.
type Info struct {
	Name    string
	Version string
	Classes []string
	Trees   int
	Nodes   int
}

// Forest is a validated, immutable decision forest.
type Forest struct {
	artifact Artifact
	catSets  [][]map[string]bool
}

// LoadForest reads and validates the artifact at path.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	forest, err := DecodeForest(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", path, err)
	}
	return forest, nil
}

// DecodeForest parses and validates an artifact stream.
func DecodeForest(r io.Reader) (*Forest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var artifact Artifact
	if err := dec.Decode(&artifact); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}

	catSets := make([][]map[string]bool, len(artifact.Trees))
	for t, tree := range artifact.Trees {
		catSets[t] = make([]map[string]bool, len(tree))
		for i, node := range tree {
			if node.isLeaf() || !categoricalFeatures[node.Feature] {
				continue
			}
			set := make(map[string]bool, len(node.Categories))
			for _, c := range node.Categories {
				set[c] = true
			}
			catSets[t][i] = set
		}
	}
	return &Forest{artifact: artifact, catSets: catSets}, nil
}

// Validate checks the artifact layout and every tree graph.
func (a Artifact) Validate() error {
	if a.FormatVersion != FormatVersion {
		return fmt.Errorf("unsupported format_version %d, want %d", a.FormatVersion, FormatVersion)
	}
	if len(a.Classes) == 0 {
		return fmt.Errorf("artifact declares no classes")
	}
	seen := make(map[string]bool, len(a.Classes))
	for _, c := range a.Classes {
		if c == "" {
			return fmt.Errorf("class labels must not be empty")
		}
		if seen[c] {
			return fmt.Errorf("duplicate class label %q", c)
		}
		seen[c] = true
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}
	for t, tree := range a.Trees {
		if err := validateTree(tree, len(a.Classes)); err != nil {
			return fmt.Errorf("tree %d: %w", t, err)
		}
	}
	return nil
}

func validateTree(tree []Node, classes int) error {
	if len(tree) == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	for i, node := range tree {
		if node.isLeaf() {
			if *node.Class < 0 || *node.Class >= classes {
				return fmt.Errorf("node %d: class index %d out of range", i, *node.Class)
			}
			continue
		}
		switch {
		case numericFeatures[node.Feature]:
			if node.Threshold == nil {
				return fmt.Errorf("node %d: numeric split on %s has no threshold", i, node.Feature)
			}
		case categoricalFeatures[node.Feature]:
			if len(node.Categories) == 0 {
				return fmt.Errorf("node %d: categorical split on %s has no categories", i, node.Feature)
			}
		default:
			return fmt.Errorf("node %d: unknown feature %q", i, node.Feature)
		}
		// Children must come after the parent, which rules out cycles.
		for _, child := range []int{node.Left, node.Right} {
			if child <= i || child >= len(tree) {
				return fmt.Errorf("node %d: child index %d out of range", i, child)
			}
		}
	}
	return nil
}

// Classify returns the majority class of the forest for input. Ties go to
// the class listed first in the artifact.
func (f *Forest) Classify(ctx context.Context, input model.ModelInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	numeric := map[string]float64{
		FeatureBMI:       input.BMI,
		FeatureIncomeLPA: input.IncomeLPA,
		FeatureCityTier:  float64(input.CityTier.Int()),
	}
	for name, v := range numeric {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("feature %s is not finite", name)
		}
	}
	categorical := map[string]string{
		FeatureLifestyleRisk: input.LifestyleRisk.String(),
		FeatureAgeGroup:      input.AgeGroup.String(),
		FeatureOccupation:    input.Occupation.String(),
	}

	votes := make([]int, len(f.artifact.Classes))
	for t, tree := range f.artifact.Trees {
		votes[f.walk(t, tree, numeric, categorical)]++
	}

	best := 0
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return f.artifact.Classes[best], nil
}

func (f *Forest) walk(t int, tree []Node, numeric map[string]float64, categorical map[string]string) int {
	i := 0
	for {
		node := tree[i]
		if node.isLeaf() {
			return *node.Class
		}
		var left bool
		if node.Threshold != nil && numericFeatures[node.Feature] {
			left = numeric[node.Feature] <= *node.Threshold
		} else {
			left = f.catSets[t][i][categorical[node.Feature]]
		}
		if left {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

// Info summarises the loaded artifact.
func (f *Forest) Info() Info {
	nodes := 0
	for _, tree := range f.artifact.Trees {
		nodes += len(tree)
	}
	classes := make([]string, len(f.artifact.Classes))
	copy(classes, f.artifact.Classes)
	return Info{
		Name:    f.artifact.Name,
		Version: f.artifact.Version,
		Classes: classes,
		Trees:   len(f.artifact.Trees),
		Nodes:   nodes,
	}
}
