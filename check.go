//go:build !flistcheck

package flist

const checked = false
