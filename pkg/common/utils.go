package common

import (
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func AbsDelta[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

func let[T any](ok bool, yes, no T) T {
	if ok {
		return yes
	}
	return no
}

func sideIndex(white bool) int {
	if white {
		return SideWhite
	}
	return SideBlack
}
