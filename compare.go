// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "bytes"

// Ready made orderings. Each panics if handed a value of another type.

// IntLess - natural order of int values.
func IntLess(a, b interface{}) bool { return a.(int) < b.(int) }

// Int64Less - natural order of int64 values.
func Int64Less(a, b interface{}) bool { return a.(int64) < b.(int64) }

// StringLess - lexical order of string values.
func StringLess(a, b interface{}) bool { return a.(string) < b.(string) }

// BytesLess - lexical order of []byte values.
func BytesLess(a, b interface{}) bool { return bytes.Compare(a.([]byte), b.([]byte)) < 0 }
