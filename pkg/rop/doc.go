// Package rop holds the railway type shared by the pipeline drivers:
// Result[T] is either a value, a failure or a cancellation, stamped with a
// uuid, its UTC creation time and the step that produced it.
package rop
