package preflight

import "fmt"

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Err is the error to surface when the check fails.
	Err error
}

// RunAll executes every check that applies to the input image path.
func RunAll(inputPath string) []Result {
	return []Result{
		CheckInputFile("Input image", inputPath),
	}
}

// FirstFailure returns the error of the first failed result, or nil.
func FirstFailure(results []Result) error {
	for _, r := range results {
		if r.Passed {
			continue
		}
		if r.Err != nil {
			return r.Err
		}
		return fmt.Errorf("%s: %s", r.Name, r.Detail)
	}
	return nil
}
