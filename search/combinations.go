package search

// Combinations calls yield with every k-element subset of {0,…,n-1}, as a
// strictly increasing index slice, in lexicographic order. k == 0 yields the
// empty subset once; k < 0 or k > n yields nothing. Enumeration stops early
// when yield returns false.
//
// The slice passed to yield is reused between calls; copy it to keep it.
func Combinations(n, k int, yield func(idx []int) bool) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !yield(idx) {
			return
		}
		// Rightmost position that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Binomial returns C(n,k), or 0 when k is out of [0,n]. Intermediate
// products must fit in a uint64, which holds for n <= 60.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var c uint64 = 1
	for i := 1; i <= k; i++ {
		// c·(n-k+i) is divisible by i at every step.
		c = c * uint64(n-k+i) / uint64(i)
	}

	return c
}
