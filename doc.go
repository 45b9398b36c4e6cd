// Package knnclassify is a k-nearest neighbors classifier for labelled
// tabular data, with the feature scaling utilities it is usually paired
// with.
//
// The library follows the scikit-learn shape used throughout the codebase:
// estimators are created with functional options, trained with Fit and
// queried with Predict and Score.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/knnclassify/dataset"
//	    "github.com/YuminosukeSato/knnclassify/neighbors"
//	)
//
//	func main() {
//	    train, err := dataset.LoadFile("iris.csv", 4)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    clf := neighbors.NewKNeighborsClassifier(neighbors.WithK(5))
//	    if err := clf.Fit(train); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := clf.PredictOne(dataset.Record{Features: []float64{5.1, 3.5, 1.4, 0.2}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(label)
//	}
//
// # Packages
//
//   - dataset: Record, Dataset, CSV loading and the random train/test splitter
//   - neighbors: Euclidean distance, neighbor ranking, voting, KNeighborsClassifier
//   - metrics: accuracy and the confusion matrix
//   - preprocessing: standard deviation, z-scores, min-max scaling and matrix scalers
//   - pipeline: split, scale, fit, predict and score in one call
//   - report: text, table and scatter plot output
//   - core/model: estimator state and interfaces
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: error types and structured logging
//
// # Command line
//
// cmd/knnclassify wraps the pipeline:
//
//	knnclassify classify iris.csv -k 3 --train-fraction 0.66 --format table
//	knnclassify normalize 2 4 4 4 5 5 7 9
//
// # Performance
//
// Predict classifies test records concurrently once the test set is larger
// than the parallel threshold (256 records by default). Each query scans the
// whole training set, so a call costs O(test × training × features).
package knnclassify
