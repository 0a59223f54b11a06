// Package conformer is a framework for authors of conformance test suites.
//
// A conformance suite is written once against an abstract capability (for
// example "anything implementing SimpleRenderer") and then run against any
// number of concrete implementations. The package provides the pieces that
// every such suite needs:
//
//   - TestCase: the single extension point. A case receives one freshly
//     constructed instance of the type under test and returns a Result.
//   - Suite: a titled, ordered collection of heterogeneous cases.
//   - Run: the sequential runner. It asks a caller-supplied Factory for a
//     new instance per case, runs the case against it and collects the
//     Results into a ResultSet.
//   - ResultSet: the immutable outcome of a run, consumed by views.
//
// Rendering lives in the view subpackage (text, HTML and JSON reports) and
// golden-file helpers for report tests live in conformertest.
//
// # Usage
//
//	suite, err := conformer.NewSuite("Renderer", "Checks SimpleRenderer implementations.",
//	    entireBuffer, firstPixel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := conformer.Run(ctx, func(tc conformer.TestCase[Renderer]) (Renderer, error) {
//	    dims, ok := conformer.Capability[Dimensions](tc)
//	    if !ok {
//	        return nil, fmt.Errorf("case does not describe its dimensions")
//	    }
//	    return NewRenderer(dims.Width(), dims.Height()), nil
//	}, suite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, _ := view.Text{}.Render(results)
//	fmt.Println(report)
//	results.AssertDidPass()
//
// # Error classes
//
// Usage errors (an empty suite, an empty result set, a factory that cannot
// build an instance) are returned as errors and must not be ignored. A
// failing case is not an error: it is recorded as a Result with Passed()
// false and the run continues. Failure is only escalated when the caller
// asks for it through ResultSet.DidPass, ResultSet.Err or
// ResultSet.AssertDidPass.
package conformer
