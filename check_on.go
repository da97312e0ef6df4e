//go:build flistcheck

package flist

const checked = true
