/*
Package comm decodes and encodes the operations that reach a shared to-do list from
the outside. Operations travel as single pipe-delimited text lines, e.g. read from a
replay file or posted to the HTTP API, and are parsed back into structured form here.
Applying them is left to package list.
*/
package comm
