// Package roomfile reads and annotates room import files.
//
// A room file is a CSV (or XLSX, selected by extension) with a header
// row and the required columns "locationId" and "name". An optional
// "DEC" column marks rows already processed; the annotator writes it
// back after a batch run, preserving all original columns and row
// order with a full-file rewrite.
package roomfile
