// Package dansk provides sentence analysis and translation for Danish learners.
//
// Dansk checks a learner-typed Danish sentence against a structured
// vocabulary dataset: it recognizes words (including inflected forms),
// applies a small set of word-order and agreement rules, and produces a
// best-effort English translation.
//
// Basic usage:
//
//	import (
//	    dansk "github.com/itsmemarly/Danish-language-tool"
//	    "github.com/itsmemarly/Danish-language-tool/vocab"
//	)
//
//	func main() {
//	    ds, err := vocab.LoadFile("vocabulary.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    index := dansk.NewIndex(ds)
//	    analyzer := dansk.NewAnalyzer(index)
//	    translator := dansk.NewTranslator(index)
//
//	    for _, msg := range analyzer.Check("jeg spiser et æble") {
//	        fmt.Println(msg)
//	    }
//	    fmt.Println(translator.Translate("jeg spiser et æble"))
//	}
//
// The grammar checks and the translator are explicitly heuristic: they cover
// the V2 rule, present-tense conjugation, and en/et agreement, nothing more.
// They are not a linguistic parser and are documented as a best-effort aid.
package dansk
