package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// SortArgs returns the terms of args in non-decreasing order. args itself
// is left untouched.
//
// The sort is a stable merge sort: terms comparing Equal keep their relative
// order.
func SortArgs(args []Term) []Term {
	sorted := make([]Term, len(args))
	copy(sorted, args)
	if len(sorted) > 1 {
		buf := make([]Term, len(sorted))
		mergeSort(sorted, buf)
	}
	return sorted
}

// IsSorted is a predicate: are the terms of args in non-decreasing order?
func IsSorted(args []Term) bool {
	for i := 1; i < len(args); i++ {
		if Compare(args[i-1], args[i]) == Greater {
			return false
		}
	}
	return true
}

func mergeSort(a, buf []Term) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf[:mid])
	mergeSort(a[mid:], buf[mid:])
	merge(a, mid, buf)
}

// merge merges the sorted runs a[:mid] and a[mid:], using buf as scratch
// space. On ties the left run is taken first.
func merge(a []Term, mid int, buf []Term) {
	copy(buf, a)
	left, right := buf[:mid], buf[mid:len(a)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if Compare(left[i], right[j]) != Greater {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		a[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		a[k] = right[j]
	}
}
