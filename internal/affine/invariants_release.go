//go:build !debug

package affine

const checkInvariants = false
