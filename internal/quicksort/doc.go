// Package quicksort implements an animated quicksort parameterized by its
// partition scheme.
//
// Two schemes are provided. Lomuto uses the rightmost key as pivot and places
// it at its final index; Hoare uses the middle key's value and only returns a
// split index bounding two correctly ordered halves. Each scheme pairs its
// partition with its own recursion split, and the two pairings are not
// interchangeable.
//
// Partitioners drive a viz.Sink: every visible step is a suspension point,
// and the markers of a partition call are removed on every exit path.
package quicksort
