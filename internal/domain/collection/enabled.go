package collection

// enabledAt reports whether i indexes an enabled item.
func enabledAt(c Collection, i int) bool {
	return InRange(c, i) && c.At(i).Enabled()
}

// EnabledAt reports whether i indexes an enabled item of c.
func EnabledAt(c Collection, i int) bool {
	return enabledAt(c, i)
}

// FirstEnabledFrom returns the first enabled index >= k, or -1.
func FirstEnabledFrom(c Collection, k int) int {
	if k < 0 {
		k = 0
	}
	for i := k; i < c.Len(); i++ {
		if enabledAt(c, i) {
			return i
		}
	}
	return -1
}

// LastEnabledUpTo returns the last enabled index <= k, or -1.
func LastEnabledUpTo(c Collection, k int) int {
	if k >= c.Len() {
		k = c.Len() - 1
	}
	for i := k; i >= 0; i-- {
		if enabledAt(c, i) {
			return i
		}
	}
	return -1
}

// FirstEnabled returns the first enabled index, or -1.
func FirstEnabled(c Collection) int {
	return FirstEnabledFrom(c, 0)
}

// LastEnabled returns the last enabled index, or -1.
func LastEnabled(c Collection) int {
	return LastEnabledUpTo(c, c.Len()-1)
}

// NextEnabled returns the first enabled index after k.
// With wrap the scan continues from the start and may return k itself
// when it is the only enabled item. Returns -1 when nothing qualifies.
func NextEnabled(c Collection, k int, wrap bool) int {
	n := c.Len()
	if n == 0 {
		return -1
	}
	if !wrap {
		return FirstEnabledFrom(c, k+1)
	}
	start := k
	if start < -1 || start >= n {
		start = -1
	}
	for step := 1; step <= n; step++ {
		i := ((start+step)%n + n) % n
		if enabledAt(c, i) {
			return i
		}
	}
	return -1
}

// PrevEnabled returns the last enabled index before k, mirroring NextEnabled.
func PrevEnabled(c Collection, k int, wrap bool) int {
	n := c.Len()
	if n == 0 {
		return -1
	}
	if !wrap {
		return LastEnabledUpTo(c, k-1)
	}
	start := k
	if start < 0 || start > n {
		start = n
	}
	for step := 1; step <= n; step++ {
		i := ((start-step)%n + n) % n
		if enabledAt(c, i) {
			return i
		}
	}
	return -1
}

// EnabledCount returns how many items of c are enabled.
func EnabledCount(c Collection) int {
	count := 0
	for i := 0; i < c.Len(); i++ {
		if c.At(i).Enabled() {
			count++
		}
	}
	return count
}
