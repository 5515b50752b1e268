// Package dimgen generates dimensionality library initialization code from
// quantity tables.
//
// A [Generator] runs the whole pipeline: it reads a table with
// [dimtable.Read], groups rows sharing a dimensionality with
// [dimgroup.Build], and emits one AddDimensionalityToLibrary call per group
// followed by one registration per quantity name. Output depends only on
// the table contents, so repeated runs are byte-identical.
//
// Output is rendered to memory and written once, after every stage has
// succeeded; a failing run writes nothing.
package dimgen
