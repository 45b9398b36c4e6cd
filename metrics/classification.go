package metrics

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/knnclassify/dataset"
	"github.com/YuminosukeSato/knnclassify/pkg/errors"
)

// Accuracy は予測が正解ラベルと一致した割合をパーセントで返す
//
// 100 * (testSet[i].Label == predictions[i] となる i の数) / len(testSet)
//
// testSet が空の場合は ErrEmptyData、長さが一致しない場合は DimensionError を返す。
func Accuracy(testSet dataset.Dataset, predictions []string) (float64, error) {
	n := len(testSet)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "Accuracy: empty test set")
	}
	if len(predictions) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(predictions), 0)
	}

	correct := 0
	for i, rec := range testSet {
		if rec.Label == predictions[i] {
			correct++
		}
	}

	return float64(correct) / float64(n) * 100.0, nil
}

// ConfusionMatrix は正解ラベル×予測ラベルの件数表
type ConfusionMatrix struct {
	// Labels は正解・予測の両方に現れたラベルのソート済み一覧
	Labels []string

	index  map[string]int
	counts [][]int
}

// NewConfusionMatrix は正解ラベルと予測ラベルから混同行列を作成する
func NewConfusionMatrix(actual, predicted []string) (*ConfusionMatrix, error) {
	if len(actual) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "NewConfusionMatrix")
	}
	if len(actual) != len(predicted) {
		return nil, errors.NewDimensionError("NewConfusionMatrix", len(actual), len(predicted), 0)
	}

	seen := make(map[string]struct{})
	for i := range actual {
		seen[actual[i]] = struct{}{}
		seen[predicted[i]] = struct{}{}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	cm := &ConfusionMatrix{
		Labels: labels,
		index:  make(map[string]int, len(labels)),
		counts: make([][]int, len(labels)),
	}
	for i, l := range labels {
		cm.index[l] = i
		cm.counts[i] = make([]int, len(labels))
	}
	for i := range actual {
		cm.counts[cm.index[actual[i]]][cm.index[predicted[i]]]++
	}
	return cm, nil
}

// Count は正解が actual で予測が predicted だった件数を返す
func (cm *ConfusionMatrix) Count(actual, predicted string) int {
	i, ok := cm.index[actual]
	if !ok {
		return 0
	}
	j, ok := cm.index[predicted]
	if !ok {
		return 0
	}
	return cm.counts[i][j]
}

// Support は正解が label であるサンプル数を返す
func (cm *ConfusionMatrix) Support(label string) int {
	i, ok := cm.index[label]
	if !ok {
		return 0
	}
	total := 0
	for _, c := range cm.counts[i] {
		total += c
	}
	return total
}

// Recall は label の再現率 (0〜1) を返す。正解に label が無い場合は 0
func (cm *ConfusionMatrix) Recall(label string) float64 {
	support := cm.Support(label)
	if support == 0 {
		return 0
	}
	return float64(cm.Count(label, label)) / float64(support)
}

// Precision は label の適合率 (0〜1) を返す。label が一度も予測されていない場合は 0
func (cm *ConfusionMatrix) Precision(label string) float64 {
	j, ok := cm.index[label]
	if !ok {
		return 0
	}
	predicted := 0
	for i := range cm.counts {
		predicted += cm.counts[i][j]
	}
	if predicted == 0 {
		return 0
	}
	return float64(cm.counts[j][j]) / float64(predicted)
}

func (cm *ConfusionMatrix) String() string {
	return fmt.Sprintf("ConfusionMatrix(labels=%v, counts=%v)", cm.Labels, cm.counts)
}
