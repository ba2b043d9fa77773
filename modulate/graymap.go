package modulate

// Gray8 maps a 3-bit codeword group to an FT8 tone (§3).
var Gray8 = [8]int{0, 1, 3, 2, 5, 6, 4, 7}

// Gray4 maps a 2-bit codeword group to an FT4 tone (§3).
var Gray4 = [4]int{0, 1, 3, 2}

// ungray builds the inverse of a Gray map: tone -> bit pattern.
func ungray(gray []int) []int {
	inv := make([]int, len(gray))
	for pattern, tone := range gray {
		inv[tone] = pattern
	}
	return inv
}

// UnGray8 maps an FT8 tone back to its 3-bit codeword group.
var UnGray8 = ungray(Gray8[:])

// UnGray4 maps an FT4 tone back to its 2-bit codeword group.
var UnGray4 = ungray(Gray4[:])
