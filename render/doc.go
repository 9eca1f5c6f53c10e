// Package render turns grids, row operations, and verdicts into
// human-readable text. It is the presentation side of the trace contract:
// the reduction core emits structured events and never formats anything;
// this package owns column alignment, circled-pivot notation, 1-based
// row numbering, and the parametric vector layout.
//
// ⚙️ Usage:
//
//	fmt.Print(render.MatrixWithPivots(g, pivots))
//	pivots, _ := reduce.Reduce(g, reduce.WithOperationHook(func(op reduce.RowOp) {
//	    fmt.Println("  " + render.Op(op))
//	}))
//	fmt.Println(render.Verdict(sol))
//
// All output is deterministic; nothing here mutates its inputs.
package render
