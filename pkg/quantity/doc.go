// Package quantity turns free-form quantity labels into symbolic
// identifiers for generated code.
//
// A label such as "inverse length" becomes "kSIQuantityInverseLength". The
// mapping is not injective: differently spelled labels can produce the same
// identifier. [FindCollisions] reports those cases so callers can decide
// whether to reject them.
package quantity
