// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "errors"

// Configuration errors returned by New.
var (
	ErrUnknownVariant      = errors.New("trees.unknownvariant")
	ErrMissingKeyLess      = errors.New("trees.missingkeyless")
	ErrMissingPriorityLess = errors.New("trees.missingpriorityless")
)

// Invariant violations reported by Validate.
var (
	ErrBrokenLink    = errors.New("trees.brokenlink")
	ErrKeyOrder      = errors.New("trees.keyorder")
	ErrCount         = errors.New("trees.count")
	ErrRedRoot       = errors.New("trees.redroot")
	ErrRedAfterRed   = errors.New("trees.redafterred")
	ErrBlackHeight   = errors.New("trees.blackheight")
	ErrHeight        = errors.New("trees.height")
	ErrUnbalanced    = errors.New("trees.unbalanced")
	ErrHeapOrder     = errors.New("trees.heaporder")
	ErrForeignMember = errors.New("trees.foreignmember")
)
