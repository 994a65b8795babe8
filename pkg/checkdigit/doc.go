// Package checkdigit implements the check-digit algorithms shared by national
// identification number formats.
//
// Every function here is pure and operates on already-validated digit slices
// (each element 0-9). Length and range checks are the caller's job, usually
// done by matching the input against a format pattern first. None of these
// functions return errors; the only failure mode is a panic on a programmer
// error such as a weight vector shorter than the digits it must cover.
package checkdigit
