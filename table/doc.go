// Package table provides a list-like collection with secondary indexes.
//
// A Table holds records in positional order. CreateIndex declares a key
// function over the records; the returned Index groups records by key and is
// kept current by every mutation of the table, including records that were
// present before the index was created.
//
//	t := table.New[Result]()
//	byTest := table.CreateIndex(t, func(r Result) string { return r.TestID })
//	t.Add(Result{TestID: "AUTO_1", Value: 1})
//	byTest.Get("AUTO_1") // [{AUTO_1 1}]
//
// Composite keys are plain comparable structs.
//
// Records are tracked by identity, not by value, so V need not be comparable
// and removing one of two equal records leaves the other indexed.
//
// A Table and its indexes are safe for concurrent use. Key functions run
// while the table lock is held and must not call back into the table.
package table
