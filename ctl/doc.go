// Package ctl implements the microcoded control engine of an 8-bit
// processor core.
//
// Decoding is a compact microprogram of 512 36-bit control words: the
// opcode byte addresses the Decode Region directly, and multi-cycle
// instructions continue through the Sequencer Region. Two-phase memory
// instructions share one finisher routine per operation class, reached
// through a 5-bit pointer captured during the effective-address phase.
//
// The assembler provides a line-based source format for microprogram
// images, supporting labels, equates, and compile-time expression
// evaluation.
package ctl
