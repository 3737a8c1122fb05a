// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses optional query values leniently: malformed input
yields the caller's default rather than an error.
*/
package convert

import "strconv"

// ToBool accepts the forms understood by [strconv.ParseBool]. Anything else,
// including the empty string, is false.
func ToBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}

// ToIntD parses s as a base-10 int, falling back to def.
func ToIntD(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
