package util

import "strconv"

// MustParseUint chuyển chuỗi sang uint, trả 0 nếu không parse được
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
