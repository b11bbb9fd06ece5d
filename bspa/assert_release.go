//go:build !bspa_debug

package bspa

func assertNodeExpand(*BspaNode) {}

func assertNodeInflate(*BspaNode) {}
