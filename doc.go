// Package notesite builds a static study-notes website from a directory of
// Markdown answer files.
//
// # Quick Start
//
// Build with the default configuration (content in ".", output in "site"):
//
//	b, err := notesite.NewBuilder(config.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Pages), "pages in", result.OutputDir)
//
// # Build Stages
//
// A build runs these stages in order:
//
//  1. Load every document in the content root (README.MD excluded)
//  2. Recreate the output directory and copy the static tree into it
//  3. Render each document to <identifier>.html with its catalog metadata
//  4. Write index.html and one subject-<token>.html per populated subject
//
// Output depends only on the inputs: two builds of the same sources produce
// byte-identical trees.
//
// # Metadata
//
// Each document's title, unit, marks and subject come from the question
// catalog. Documents missing from it use their front matter, then their first
// "# " heading, then their file name. See internal/catalog.
//
// # Configuration
//
// Use functional options to replace collaborators:
//
//	b, err := notesite.NewBuilder(cfg,
//	    notesite.WithStdout(io.Discard),
//	    notesite.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
//	    notesite.WithCatalog(myCatalog),
//	)
//
// # Error Handling
//
// Errors wrap the sentinels re-exported in errors.go; check them with
// errors.Is. An empty content root is not an error: Build logs a warning and
// returns a Result without pages.
package notesite
