// Package generator composes random words, exact-length character strings,
// sentences, and paragraphs from a Lexicon.
//
// A Generator is a session: it owns the rotation cursors, the active terminator
// list, and the random source. It is not safe for concurrent use, but any number
// of sessions may share one Lexicon.
//
//	d, _ := dictionary.LoadBuiltin("english")
//	g, _ := generator.New(d, generator.DefaultConfig(), generator.WithRandomSource(generator.NewRandomSource(42)))
//	fmt.Println(g.Sentence(0))
//
// Sentences grow from a main clause until they reach the configured length tier,
// merging whole sentences with a coordinating conjunction when a single one is too
// short. Characters builds strings whose length is exactly the requested maximum
// whenever possible, repairing overflows with words of the needed length and
// falling back to truncation after RetryPolicy.RelaxAfterAttempts attempts.
package generator
