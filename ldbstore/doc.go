// Package ldbstore implements a checkpoint store that keeps the accumulated
// regrets and strategies of a cfr.Table on disk in a LevelDB database, so
// that training can be resumed by a later run.
package ldbstore
