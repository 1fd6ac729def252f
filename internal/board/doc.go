// Package board holds the task board rules: lifecycle timestamps on writes,
// ordering inside a column and the split between the active board and the
// archive. Every function takes the current time as an argument.
package board
