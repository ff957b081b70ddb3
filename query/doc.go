// Package query selects instructions from a document with
// github.com/expr-lang/expr boolean expressions.
//
// # Usage
//
//	q, err := query.Compile(`Op == "remove" && glob("/Script/*", Section)`)
//	if err != nil {
//	    return err
//	}
//	entries, err := query.Select(cfg, q)
package query
